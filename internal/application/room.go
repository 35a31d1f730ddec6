package application

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/input"
	"retreat/internal/ports/output"
)

var _ input.RoomUseCase = (*RoomService)(nil)

const maxRoomsPerRequest = 500

type RoomService struct {
	store output.Store
}

func NewRoomService(store output.Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) CreateRoom(ctx context.Context, actor, eventID string, req input.CreateRoomRequest) (*entities.Room, error) {
	tpl := entities.RoomTemplate{
		Capacity:           req.Capacity,
		HasPrivateBathroom: req.HasPrivateBathroom,
		Quantity:           1,
		GenderRestriction:  req.GenderRestriction,
		DisplayName:        strings.TrimSpace(req.DisplayName),
	}
	if tpl.Capacity == 0 {
		tpl.Capacity = entities.DefaultRoomCapacity
	}
	rooms, err := s.CreateRoomsFromTemplates(ctx, actor, eventID, []entities.RoomTemplate{tpl})
	if err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

// CreateRoomsFromTemplates expands each template into Quantity rooms,
// numbering them sequentially after the highest number the event ever used.
// All rooms are created or none.
func (s *RoomService) CreateRoomsFromTemplates(ctx context.Context, actor, eventID string, templates []entities.RoomTemplate) ([]entities.Room, error) {
	ctx, span := startSpan(ctx, "RoomService.CreateRoomsFromTemplates",
		attribute.String("event.id", eventID),
		attribute.Int("templates", len(templates)),
	)
	rooms, err := s.createRooms(ctx, actor, eventID, templates)
	endSpan(span, err)
	return rooms, err
}

func (s *RoomService) createRooms(ctx context.Context, actor, eventID string, templates []entities.RoomTemplate) ([]entities.Room, error) {
	if len(templates) == 0 {
		return nil, domain.Invalidf("at least one room template is required")
	}
	total := 0
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		// Checked per template so large quantities cannot overflow the sum.
		if t.Quantity > maxRoomsPerRequest-total {
			return nil, domain.Invalidf("cannot create more than %d rooms at once", maxRoomsPerRequest)
		}
		total += t.Quantity
	}

	var created []entities.Room
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
			return err
		}
		next, err := repos.Events.ReserveRoomNumbers(ctx, eventID, total)
		if err != nil {
			return fmt.Errorf("reserve room numbers: %w", err)
		}
		created = make([]entities.Room, 0, total)
		for _, t := range templates {
			restriction := t.GenderRestriction
			if restriction == "" {
				restriction = domain.RestrictionMixed
			}
			for range t.Quantity {
				number := entities.FormatRoomNumber(next)
				next++
				room := entities.Room{
					EventID:            eventID,
					InternalNumber:     number,
					DisplayName:        t.DisplayName,
					Capacity:           t.Capacity,
					GenderRestriction:  restriction,
					HasPrivateBathroom: t.HasPrivateBathroom,
				}
				if room.DisplayName == "" {
					room.DisplayName = entities.DefaultRoomName(number)
				}
				if err := repos.Rooms.Create(ctx, &room); err != nil {
					return fmt.Errorf("create room %s: %w", number, err)
				}
				created = append(created, room)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SuggestTemplates proposes two-person rooms for the event's estimated headcount.
func (s *RoomService) SuggestTemplates(ctx context.Context, actor, eventID string) ([]entities.RoomTemplate, error) {
	event, err := ownedEvent(ctx, s.store.Repos(), actor, eventID)
	if err != nil {
		return nil, err
	}
	return entities.SuggestedTemplates(event.EstimatedParticipants), nil
}

func (s *RoomService) ListRooms(ctx context.Context, actor, eventID string) ([]entities.Room, error) {
	repos := s.store.Repos()
	if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
		return nil, err
	}
	rooms, err := repos.Rooms.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, actor, roomID string, patch entities.RoomPatch) (*entities.Room, error) {
	ctx, span := startSpan(ctx, "RoomService.UpdateRoom", attribute.String("room.id", roomID))
	var result *entities.Room
	err := patch.Validate()
	if err == nil {
		err = s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
			room, _, err := ownedRoom(ctx, repos, actor, roomID, true)
			if err != nil {
				return err
			}
			patch.Apply(room)
			if err := repos.Rooms.Update(ctx, room); err != nil {
				return fmt.Errorf("update room: %w", err)
			}
			result = room
			return nil
		})
	}
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteRoom removes a room. Its occupants return to the unassigned pool and
// its internal number is never handed out again.
func (s *RoomService) DeleteRoom(ctx context.Context, actor, roomID string) error {
	ctx, span := startSpan(ctx, "RoomService.DeleteRoom", attribute.String("room.id", roomID))
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		room, _, err := ownedRoom(ctx, repos, actor, roomID, true)
		if err != nil {
			return err
		}
		if err := repos.Rooms.Delete(ctx, room.ID); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		return nil
	})
	endSpan(span, err)
	return err
}
