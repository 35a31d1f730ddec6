package entities

import (
	"errors"
	"testing"

	"retreat/internal/domain"
)

func TestFormatRoomNumber(t *testing.T) {
	tests := map[int]string{1: "01", 9: "09", 10: "10", 100: "100"}
	for n, want := range tests {
		if got := FormatRoomNumber(n); got != want {
			t.Fatalf("FormatRoomNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRoomAdmits(t *testing.T) {
	locked := Room{Locked: true, GenderRestriction: domain.RestrictionMixed}
	if err := locked.Admits(domain.GenderFemale); !errors.Is(err, domain.ErrRoomClosed) {
		t.Fatalf("locked room err = %v, want %v", err, domain.ErrRoomClosed)
	}
	lockedWomen := Room{Locked: true, GenderRestriction: domain.RestrictionWomen}
	if err := lockedWomen.Admits(domain.GenderMale); !errors.Is(err, domain.ErrRoomClosed) {
		t.Fatalf("locked check must come first, got %v", err)
	}
	women := Room{GenderRestriction: domain.RestrictionWomen}
	if err := women.Admits(domain.GenderMale); !errors.Is(err, domain.ErrGenderRestriction) {
		t.Fatalf("women room err = %v, want %v", err, domain.ErrGenderRestriction)
	}
	if err := women.Admits(domain.GenderUnknown); err != nil {
		t.Fatalf("unknown gender rejected: %v", err)
	}
}

func TestSuggestedTemplates(t *testing.T) {
	tests := []struct {
		estimated int
		want      []RoomTemplate
	}{
		{0, nil},
		{1, []RoomTemplate{{Capacity: 1, Quantity: 1}}},
		{4, []RoomTemplate{{Capacity: 2, Quantity: 2}}},
		{7, []RoomTemplate{{Capacity: 2, Quantity: 3}, {Capacity: 1, Quantity: 1}}},
	}
	for _, tt := range tests {
		got := SuggestedTemplates(tt.estimated)
		if len(got) != len(tt.want) {
			t.Fatalf("SuggestedTemplates(%d) = %+v, want %+v", tt.estimated, got, tt.want)
		}
		rooms := 0
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("SuggestedTemplates(%d)[%d] = %+v, want %+v", tt.estimated, i, got[i], tt.want[i])
			}
			rooms += got[i].Quantity
		}
		if wantRooms := (tt.estimated + 1) / 2; rooms != wantRooms {
			t.Fatalf("SuggestedTemplates(%d) rooms = %d, want %d", tt.estimated, rooms, wantRooms)
		}
	}
}

func TestRoomTemplateValidate(t *testing.T) {
	bad := []RoomTemplate{
		{Capacity: 0, Quantity: 1},
		{Capacity: 2, Quantity: 0},
		{Capacity: 2, Quantity: 1, GenderRestriction: "couples"},
	}
	for _, tpl := range bad {
		if err := tpl.Validate(); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Validate(%+v) = %v, want validation error", tpl, err)
		}
	}
	if err := (RoomTemplate{Capacity: 2, Quantity: 3}).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRoomPatchApply(t *testing.T) {
	room := Room{InternalNumber: "04", DisplayName: "Azul", Capacity: 2, GenderRestriction: domain.RestrictionMixed}
	empty := ""
	capacity := 3
	women := domain.RestrictionWomen

	patch := RoomPatch{DisplayName: &empty, Capacity: &capacity, GenderRestriction: &women}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	patch.Apply(&room)

	if room.DisplayName != "Hab 04" {
		t.Fatalf("DisplayName = %q, want default name", room.DisplayName)
	}
	if room.Capacity != 3 || room.GenderRestriction != domain.RestrictionWomen {
		t.Fatalf("room = %+v", room)
	}

	zero := 0
	if err := (RoomPatch{Capacity: &zero}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero capacity err = %v, want validation", err)
	}
}
