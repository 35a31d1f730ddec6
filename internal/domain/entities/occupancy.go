package entities

import "retreat/internal/domain"

// Occupancy is a room with its current occupants and the values derived from them.
type Occupancy struct {
	Room               Room
	Occupants          []Participation
	AssignedCount      int
	HasTentatives      bool
	HasGenderViolation bool
	Status             domain.RoomStatus
}

// NewOccupancy derives counts, flags and status for room. It is recomputed on
// every read; nothing here is persisted.
func NewOccupancy(room Room, occupants []Participation) Occupancy {
	return Occupancy{
		Room:               room,
		Occupants:          occupants,
		AssignedCount:      len(occupants),
		HasTentatives:      HasTentatives(occupants),
		HasGenderViolation: HasGenderViolation(room, occupants),
		Status:             DeriveRoomStatus(room, occupants),
	}
}

// DeriveRoomStatus classifies a room. First match wins:
// closed, danger (over capacity or gender violation), warn (under-filled or
// tentative occupant), ok.
func DeriveRoomStatus(room Room, occupants []Participation) domain.RoomStatus {
	count := len(occupants)
	switch {
	case room.Locked:
		return domain.RoomStatusClosed
	case count > room.Capacity, HasGenderViolation(room, occupants):
		return domain.RoomStatusDanger
	case count < room.Capacity, HasTentatives(occupants):
		return domain.RoomStatusWarn
	default:
		return domain.RoomStatusOK
	}
}

// HasGenderViolation reports whether any occupant breaks the room restriction.
func HasGenderViolation(room Room, occupants []Participation) bool {
	for i := range occupants {
		if !room.GenderRestriction.Allows(occupants[i].Person.Gender) {
			return true
		}
	}
	return false
}

func HasTentatives(occupants []Participation) bool {
	for i := range occupants {
		if occupants[i].Status == domain.StatusTentative {
			return true
		}
	}
	return false
}

// Board is the full assignment picture of one event.
type Board struct {
	Event      Event
	Rooms      []Occupancy
	Unassigned []Participation
}

func (b *Board) AssignedCount() int {
	n := 0
	for i := range b.Rooms {
		n += b.Rooms[i].AssignedCount
	}
	return n
}

func (b *Board) TotalPersons() int {
	return b.AssignedCount() + len(b.Unassigned)
}
