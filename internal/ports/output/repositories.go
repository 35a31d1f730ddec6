package output

import (
	"context"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

// Repositories return domain.ErrNotFound (possibly wrapped) when a row is missing.

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]entities.EventSummary, error)
	// ReserveRoomNumbers advances the event room sequence by n and returns the
	// first reserved number. Numbers are never handed out twice.
	ReserveRoomNumbers(ctx context.Context, eventID string, n int) (int, error)
	Delete(ctx context.Context, id string) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *entities.Room) error
	FindByID(ctx context.Context, id string) (*entities.Room, error)
	// FindByIDForUpdate is FindByID holding a write lock until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Room, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.Room, error)
	Update(ctx context.Context, room *entities.Room) error
	// Delete removes the room; its occupants fall back to the unassigned pool.
	Delete(ctx context.Context, id string) error
}

type PersonRepository interface {
	Create(ctx context.Context, person *entities.Person) error
	UpdateGender(ctx context.Context, id string, gender domain.Gender) error
}

type ParticipationRepository interface {
	Create(ctx context.Context, participation *entities.Participation) error
	// FindByID loads the participation with its person and room summary.
	FindByID(ctx context.Context, id string) (*entities.Participation, error)
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Participation, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.Participation, error)
	FindByRoomID(ctx context.Context, roomID string) ([]entities.Participation, error)
	FindUnassigned(ctx context.Context, eventID string) ([]entities.Participation, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
	SetRoom(ctx context.Context, id string, roomID *string) error
	// Update writes the detail fields. It never touches room_id.
	Update(ctx context.Context, participation *entities.Participation) error
	Delete(ctx context.Context, id string) error
}

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Events         EventRepository
	Rooms          RoomRepository
	Persons        PersonRepository
	Participations ParticipationRepository
}

// Store hands out repositories and runs atomic units of work.
type Store interface {
	Repos() Repositories
	// WithinTx runs fn in one transaction, committing when fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
