package entities

import (
	"errors"
	"slices"
	"testing"

	"retreat/internal/domain"
)

func TestParticipationPatch(t *testing.T) {
	roomID := "room-1"
	p := Participation{RoomID: &roomID, Status: domain.StatusConfirmed, Person: Person{Gender: domain.GenderUnknown}}
	female := domain.GenderFemale
	tentative := domain.StatusTentative
	dietary := []domain.Dietary{domain.DietaryGlutenFree, domain.DietaryVegetarian, domain.DietaryGlutenFree}

	patch := ParticipationPatch{Gender: &female, Status: &tentative, DietaryRequirements: &dietary}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	patch.Apply(&p)

	if p.Person.Gender != domain.GenderFemale || p.Status != domain.StatusTentative {
		t.Fatalf("participation = %+v", p)
	}
	want := []domain.Dietary{domain.DietaryGlutenFree, domain.DietaryVegetarian}
	if !slices.Equal(p.DietaryRequirements, want) {
		t.Fatalf("dietary = %v, want %v", p.DietaryRequirements, want)
	}
	if !p.InRoom("room-1") {
		t.Fatal("patch must not move the participation")
	}
}

func TestParticipationPatchValidate(t *testing.T) {
	bogusDiet := []domain.Dietary{"vegan"}
	bogusRole := domain.Role("guest")
	for _, patch := range []ParticipationPatch{
		{DietaryRequirements: &bogusDiet},
		{Role: &bogusRole},
	} {
		if err := patch.Validate(); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Validate(%+v) = %v, want validation error", patch, err)
		}
	}
}
