package domain

import "fmt"

// Gender of a person.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

// GenderRestriction limits who may sleep in a room.
type GenderRestriction string

const (
	RestrictionMixed GenderRestriction = "mixed"
	RestrictionWomen GenderRestriction = "women"
	RestrictionMen   GenderRestriction = "men"
)

func (r GenderRestriction) Valid() bool {
	switch r {
	case RestrictionMixed, RestrictionWomen, RestrictionMen:
		return true
	}
	return false
}

// ExpectedGender returns the only gender a restricted room accepts.
// ok is false for mixed rooms.
func (r GenderRestriction) ExpectedGender() (g Gender, ok bool) {
	switch r {
	case RestrictionWomen:
		return GenderFemale, true
	case RestrictionMen:
		return GenderMale, true
	}
	return "", false
}

// Allows reports whether a person of gender g may occupy a room with this
// restriction. GenderUnknown is always allowed.
func (r GenderRestriction) Allows(g Gender) bool {
	expected, restricted := r.ExpectedGender()
	if !restricted || g == GenderUnknown {
		return true
	}
	return g == expected
}

// Role of a person within an event.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleFacilitator Role = "facilitator"
)

func (r Role) Valid() bool {
	return r == RoleParticipant || r == RoleFacilitator
}

// Participation statuses.
type ParticipationStatus string

const (
	StatusConfirmed ParticipationStatus = "confirmed"
	StatusTentative ParticipationStatus = "tentative"
	StatusCancelled ParticipationStatus = "cancelled"
)

func (s ParticipationStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusTentative, StatusCancelled:
		return true
	}
	return false
}

// Dietary requirement tags.
type Dietary string

const (
	DietaryVegetarian  Dietary = "vegetarian"
	DietaryGlutenFree  Dietary = "gluten_free"
	DietaryLactoseFree Dietary = "lactose_free"
)

func (d Dietary) Valid() bool {
	switch d {
	case DietaryVegetarian, DietaryGlutenFree, DietaryLactoseFree:
		return true
	}
	return false
}

// Event lifecycle statuses.
const (
	EventStatusActive   = "active"
	EventStatusArchived = "archived"
)

// RoomStatus is the derived occupancy health of a room. Never persisted.
type RoomStatus string

const (
	RoomStatusOK     RoomStatus = "ok"
	RoomStatusWarn   RoomStatus = "warn"
	RoomStatusDanger RoomStatus = "danger"
	RoomStatusClosed RoomStatus = "closed"
)

// Invalidf builds an ErrValidation carrying a detail message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
