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

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	store output.Store
}

func NewEventService(store output.Store) *EventService {
	return &EventService{store: store}
}

// CreateEvent creates an active event without rooms. Rooms are added
// afterwards through templates (see RoomService.SuggestTemplates).
func (s *EventService) CreateEvent(ctx context.Context, actor string, req input.CreateEventRequest) (*entities.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return nil, domain.Invalidf("event name is required")
	case req.DateStart.IsZero() || req.DateEnd.IsZero():
		return nil, domain.Invalidf("start and end dates are required")
	case req.DateEnd.Before(req.DateStart):
		return nil, domain.Invalidf("end date must not be before start date")
	case req.EstimatedParticipants < 1:
		return nil, domain.Invalidf("estimated participants must be at least 1")
	}

	ctx, span := startSpan(ctx, "EventService.CreateEvent")
	event := &entities.Event{
		OwnerID:               actor,
		Name:                  name,
		DateStart:             req.DateStart,
		DateEnd:               req.DateEnd,
		EstimatedParticipants: req.EstimatedParticipants,
		Status:                domain.EventStatusActive,
	}
	err := s.store.Repos().Events.Create(ctx, event)
	if err != nil {
		err = fmt.Errorf("create event: %w", err)
	}
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, actor, eventID string) (*entities.Event, error) {
	return ownedEvent(ctx, s.store.Repos(), actor, eventID)
}

// ListEvents returns the actor's events, most recent start date first.
func (s *EventService) ListEvents(ctx context.Context, actor string) ([]entities.EventSummary, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	events, err := s.store.Repos().Events.FindByOwnerID(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes the event with its rooms and participations.
// Persons are kept for reuse in other events.
func (s *EventService) DeleteEvent(ctx context.Context, actor, eventID string) error {
	ctx, span := startSpan(ctx, "EventService.DeleteEvent", attribute.String("event.id", eventID))
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
			return err
		}
		if err := repos.Events.Delete(ctx, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
	endSpan(span, err)
	return err
}
