package input

import (
	"context"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

type CreateParticipantRequest struct {
	NameFull string
	Gender   domain.Gender
	Role     domain.Role
}

type ParticipantUseCase interface {
	CreateParticipant(ctx context.Context, actor, eventID string, req CreateParticipantRequest) (*entities.Participation, error)
	CreateParticipantsBatch(ctx context.Context, actor, eventID string, names []string) ([]entities.Participation, error)
	SeedTestParticipants(ctx context.Context, actor, eventID string) (int, error)
	GetParticipation(ctx context.Context, actor, participationID string) (*entities.Participation, error)
	UpdateParticipation(ctx context.Context, actor, participationID string, patch entities.ParticipationPatch) (*entities.Participation, error)
	RemoveParticipation(ctx context.Context, actor, participationID string) error
}
