package entities

import (
	"fmt"
	"time"

	"retreat/internal/domain"
)

const (
	DefaultRoomCapacity = 2
	roomNamePrefix      = "Hab "
)

// Room is a sleeping unit of one event.
type Room struct {
	ID                 string
	EventID            string
	InternalNumber     string
	DisplayName        string
	Capacity           int
	GenderRestriction  domain.GenderRestriction
	HasPrivateBathroom bool
	Locked             bool
	LockedReason       string
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FormatRoomNumber renders a sequence number as an internal room number ("01", "02", ...).
func FormatRoomNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// DefaultRoomName is the display name used when none is given.
func DefaultRoomName(internalNumber string) string {
	return roomNamePrefix + internalNumber
}

// Name returns the display name, falling back to the default one.
func (r *Room) Name() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return DefaultRoomName(r.InternalNumber)
}

// Admits reports whether a person of gender g may be placed in the room.
func (r *Room) Admits(g domain.Gender) error {
	if r.Locked {
		return domain.ErrRoomClosed
	}
	if !r.GenderRestriction.Allows(g) {
		return domain.ErrGenderRestriction
	}
	return nil
}

// RoomTemplate describes quantity identical rooms to create.
type RoomTemplate struct {
	Capacity           int
	HasPrivateBathroom bool
	Quantity           int
	GenderRestriction  domain.GenderRestriction
	DisplayName        string
}

func (t RoomTemplate) Validate() error {
	if t.Capacity < 1 {
		return domain.Invalidf("capacity must be at least 1, got %d", t.Capacity)
	}
	if t.Quantity < 1 {
		return domain.Invalidf("quantity must be at least 1, got %d", t.Quantity)
	}
	if t.GenderRestriction != "" && !t.GenderRestriction.Valid() {
		return domain.Invalidf("unknown gender restriction %q", t.GenderRestriction)
	}
	return nil
}

// SuggestedTemplates returns two-person rooms for estimated people, with a
// single room when the estimate is odd.
func SuggestedTemplates(estimated int) []RoomTemplate {
	if estimated < 1 {
		return nil
	}
	var out []RoomTemplate
	if pairs := estimated / 2; pairs > 0 {
		out = append(out, RoomTemplate{Capacity: DefaultRoomCapacity, Quantity: pairs})
	}
	if estimated%2 != 0 {
		out = append(out, RoomTemplate{Capacity: 1, Quantity: 1})
	}
	return out
}

// RoomPatch holds optional room edits. Nil fields are left unchanged.
type RoomPatch struct {
	DisplayName        *string
	Capacity           *int
	HasPrivateBathroom *bool
	GenderRestriction  *domain.GenderRestriction
	Locked             *bool
	LockedReason       *string
	Description        *string
}

func (patch RoomPatch) Validate() error {
	if patch.Capacity != nil && *patch.Capacity < 1 {
		return domain.Invalidf("capacity must be at least 1, got %d", *patch.Capacity)
	}
	if patch.GenderRestriction != nil && !patch.GenderRestriction.Valid() {
		return domain.Invalidf("unknown gender restriction %q", *patch.GenderRestriction)
	}
	return nil
}

// Apply copies the set fields onto r. Occupants are never moved: a changed
// restriction shows up as a violation in the derived status.
func (patch RoomPatch) Apply(r *Room) {
	if patch.DisplayName != nil {
		r.DisplayName = *patch.DisplayName
		if r.DisplayName == "" {
			r.DisplayName = DefaultRoomName(r.InternalNumber)
		}
	}
	if patch.Capacity != nil {
		r.Capacity = *patch.Capacity
	}
	if patch.HasPrivateBathroom != nil {
		r.HasPrivateBathroom = *patch.HasPrivateBathroom
	}
	if patch.GenderRestriction != nil {
		r.GenderRestriction = *patch.GenderRestriction
	}
	if patch.Locked != nil {
		r.Locked = *patch.Locked
	}
	if patch.LockedReason != nil {
		r.LockedReason = *patch.LockedReason
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
}
