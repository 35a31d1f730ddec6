package input

import (
	"context"

	"retreat/internal/domain/entities"
)

// Every use case takes the acting organizer id explicitly.

type AssignmentUseCase interface {
	Assign(ctx context.Context, actor, participationID, roomID string) (*entities.Participation, error)
	Unassign(ctx context.Context, actor, participationID string) (*entities.Participation, error)
	ListUnassigned(ctx context.Context, actor, eventID string) ([]entities.Participation, error)
	Board(ctx context.Context, actor, eventID string) (*entities.Board, error)
}
