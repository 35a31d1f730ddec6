package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("boom"), ""},
		{ErrNotFound, CodeNotFound},
		{fmt.Errorf("find room: %w", ErrNotFound), CodeNotFound},
		{ErrRoomClosed, CodeRoomClosed},
		{ErrGenderRestriction, CodeGenderRestriction},
		{Invalidf("capacity must be at least 1, got %d", 0), CodeValidation},
		{ErrUnauthenticated, CodeUnauthenticated},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Fatalf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestInvalidfKeepsDetail(t *testing.T) {
	err := Invalidf("unknown gender %q", "x")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Invalidf error does not wrap ErrValidation: %v", err)
	}
	if want := `validation error: unknown gender "x"`; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestGenderRestrictionAllows(t *testing.T) {
	tests := []struct {
		restriction GenderRestriction
		gender      Gender
		want        bool
	}{
		{RestrictionMixed, GenderMale, true},
		{RestrictionMixed, GenderFemale, true},
		{RestrictionMixed, GenderOther, true},
		{RestrictionWomen, GenderFemale, true},
		{RestrictionWomen, GenderMale, false},
		{RestrictionWomen, GenderOther, false},
		{RestrictionWomen, GenderUnknown, true},
		{RestrictionMen, GenderMale, true},
		{RestrictionMen, GenderFemale, false},
		{RestrictionMen, GenderUnknown, true},
	}
	for _, tt := range tests {
		if got := tt.restriction.Allows(tt.gender); got != tt.want {
			t.Fatalf("%s.Allows(%s) = %v, want %v", tt.restriction, tt.gender, got, tt.want)
		}
	}
}

func TestValueValidation(t *testing.T) {
	if Gender("robot").Valid() {
		t.Fatal("unexpected valid gender")
	}
	if GenderRestriction("couples").Valid() {
		t.Fatal("unexpected valid restriction")
	}
	if Role("guest").Valid() {
		t.Fatal("unexpected valid role")
	}
	if ParticipationStatus("maybe").Valid() {
		t.Fatal("unexpected valid status")
	}
	if Dietary("vegan").Valid() {
		t.Fatal("unexpected valid dietary requirement")
	}
	if !DietaryLactoseFree.Valid() || !StatusCancelled.Valid() || !RoleFacilitator.Valid() {
		t.Fatal("expected known values to be valid")
	}
}
