package input

import (
	"context"
	"time"

	"retreat/internal/domain/entities"
)

type CreateEventRequest struct {
	Name                  string
	DateStart             time.Time
	DateEnd               time.Time
	EstimatedParticipants int
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, actor string, req CreateEventRequest) (*entities.Event, error)
	GetEvent(ctx context.Context, actor, eventID string) (*entities.Event, error)
	ListEvents(ctx context.Context, actor string) ([]entities.EventSummary, error)
	DeleteEvent(ctx context.Context, actor, eventID string) error
}
