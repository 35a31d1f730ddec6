package input

import (
	"context"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

type CreateRoomRequest struct {
	DisplayName        string
	Capacity           int // 0 means the default capacity
	HasPrivateBathroom bool
	GenderRestriction  domain.GenderRestriction
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, actor, eventID string, req CreateRoomRequest) (*entities.Room, error)
	CreateRoomsFromTemplates(ctx context.Context, actor, eventID string, templates []entities.RoomTemplate) ([]entities.Room, error)
	SuggestTemplates(ctx context.Context, actor, eventID string) ([]entities.RoomTemplate, error)
	ListRooms(ctx context.Context, actor, eventID string) ([]entities.Room, error)
	UpdateRoom(ctx context.Context, actor, roomID string, patch entities.RoomPatch) (*entities.Room, error)
	DeleteRoom(ctx context.Context, actor, roomID string) error
}
