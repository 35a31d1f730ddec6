package application

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/input"
	"retreat/internal/ports/output"
)

var _ input.AssignmentUseCase = (*AssignmentService)(nil)

// AssignmentService places participations into rooms and back into the
// unassigned pool.
type AssignmentService struct {
	store    output.Store
	notifier output.AssignmentNotifier
}

func NewAssignmentService(store output.Store, notifier output.AssignmentNotifier) *AssignmentService {
	if notifier == nil {
		notifier = output.NopNotifier{}
	}
	return &AssignmentService{store: store, notifier: notifier}
}

// Assign moves a participation into roomID. Checks run in order inside one
// transaction: participation owned, room exists in the same event, room not
// locked, gender admitted. Capacity is not enforced; over-filling shows up as
// a danger status on the board.
func (s *AssignmentService) Assign(ctx context.Context, actor, participationID, roomID string) (*entities.Participation, error) {
	ctx, span := startSpan(ctx, "AssignmentService.Assign",
		attribute.String("participation.id", participationID),
		attribute.String("room.id", roomID),
	)
	var (
		result *entities.Participation
		change output.AssignmentChange
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		p, event, err := ownedParticipation(ctx, repos, actor, participationID, true)
		if err != nil {
			return err
		}
		room, err := repos.Rooms.FindByIDForUpdate(ctx, roomID)
		if err != nil {
			return lookupErr("room", err)
		}
		if room.EventID != p.EventID {
			return domain.ErrNotFound
		}
		if err := room.Admits(p.Person.Gender); err != nil {
			return err
		}

		previous := p.RoomID
		if err := repos.Participations.SetRoom(ctx, p.ID, &room.ID); err != nil {
			return fmt.Errorf("assign participation: %w", err)
		}
		p.RoomID = &room.ID
		p.Room = &entities.RoomRef{ID: room.ID, DisplayName: room.Name(), InternalNumber: room.InternalNumber}

		occupants, err := repos.Participations.FindByRoomID(ctx, room.ID)
		if err != nil {
			return fmt.Errorf("load room occupants: %w", err)
		}
		occupancy := entities.NewOccupancy(*room, occupants)
		result = p
		change = output.AssignmentChange{Event: *event, Participation: *p, PreviousRoomID: previous, Room: &occupancy}
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	s.notifier.ParticipationMoved(ctx, change)
	return result, nil
}

// Unassign returns a participation to the unassigned pool.
func (s *AssignmentService) Unassign(ctx context.Context, actor, participationID string) (*entities.Participation, error) {
	ctx, span := startSpan(ctx, "AssignmentService.Unassign",
		attribute.String("participation.id", participationID),
	)
	var (
		result *entities.Participation
		change output.AssignmentChange
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		p, event, err := ownedParticipation(ctx, repos, actor, participationID, true)
		if err != nil {
			return err
		}
		previous := p.RoomID
		if err := repos.Participations.SetRoom(ctx, p.ID, nil); err != nil {
			return fmt.Errorf("unassign participation: %w", err)
		}
		p.RoomID = nil
		p.Room = nil
		result = p
		change = output.AssignmentChange{Event: *event, Participation: *p, PreviousRoomID: previous}
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	if change.PreviousRoomID != nil {
		s.notifier.ParticipationMoved(ctx, change)
	}
	return result, nil
}

// ListUnassigned returns the event's unassigned pool sorted by full name.
func (s *AssignmentService) ListUnassigned(ctx context.Context, actor, eventID string) ([]entities.Participation, error) {
	ctx, span := startSpan(ctx, "AssignmentService.ListUnassigned", attribute.String("event.id", eventID))
	out, err := s.listUnassigned(ctx, actor, eventID)
	endSpan(span, err)
	return out, err
}

func (s *AssignmentService) listUnassigned(ctx context.Context, actor, eventID string) ([]entities.Participation, error) {
	repos := s.store.Repos()
	if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
		return nil, err
	}
	ps, err := repos.Participations.FindUnassigned(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list unassigned: %w", err)
	}
	sortByFullName(ps)
	return ps, nil
}

// Board returns every room of the event with its occupants and derived
// status, plus the unassigned pool.
func (s *AssignmentService) Board(ctx context.Context, actor, eventID string) (*entities.Board, error) {
	ctx, span := startSpan(ctx, "AssignmentService.Board", attribute.String("event.id", eventID))
	board, err := s.board(ctx, actor, eventID)
	endSpan(span, err)
	return board, err
}

func (s *AssignmentService) board(ctx context.Context, actor, eventID string) (*entities.Board, error) {
	repos := s.store.Repos()
	event, err := ownedEvent(ctx, repos, actor, eventID)
	if err != nil {
		return nil, err
	}
	rooms, err := repos.Rooms.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	participations, err := repos.Participations.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}

	byRoom := make(map[string][]entities.Participation, len(rooms))
	var unassigned []entities.Participation
	for _, p := range participations {
		if p.RoomID == nil {
			unassigned = append(unassigned, p)
			continue
		}
		byRoom[*p.RoomID] = append(byRoom[*p.RoomID], p)
	}
	sortByFullName(unassigned)

	board := &entities.Board{Event: *event, Unassigned: unassigned}
	for _, room := range rooms {
		occupants := byRoom[room.ID]
		sortByFullName(occupants)
		board.Rooms = append(board.Rooms, entities.NewOccupancy(room, occupants))
	}
	return board, nil
}
