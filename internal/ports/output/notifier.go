package output

import (
	"context"

	"retreat/internal/domain/entities"
)

// AssignmentChange describes one committed assign or unassign.
type AssignmentChange struct {
	Event          entities.Event
	Participation  entities.Participation
	PreviousRoomID *string
	// Room is the target room after the change; nil on unassign.
	Room *entities.Occupancy
}

// AssignmentNotifier is told about committed room moves. Implementations are
// best effort and must not block the caller for long.
type AssignmentNotifier interface {
	ParticipationMoved(ctx context.Context, change AssignmentChange)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) ParticipationMoved(context.Context, AssignmentChange) {}
