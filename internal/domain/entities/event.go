package entities

import "time"

// Event is a retreat owned by one organizer.
type Event struct {
	ID                    string
	OwnerID               string
	Name                  string
	DateStart             time.Time
	DateEnd               time.Time
	EstimatedParticipants int
	Status                string
	RoomSeq               int // highest internal room number handed out so far
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (e *Event) OwnedBy(ownerID string) bool {
	return e != nil && ownerID != "" && e.OwnerID == ownerID
}

// EventSummary is an Event with the counters shown on the organizer dashboard.
type EventSummary struct {
	Event
	RoomCount     int
	PersonCount   int
	AssignedCount int
}
