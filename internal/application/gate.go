package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

// The ownership gate: every lookup walks entity -> event -> owner and reports
// anything the actor does not own as domain.ErrNotFound, exactly like a
// missing row.

func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

func lookupErr(what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("find %s: %w", what, err)
}

func ownedEvent(ctx context.Context, repos output.Repositories, actor, eventID string) (*entities.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	event, err := repos.Events.FindByID(ctx, eventID)
	if err != nil {
		return nil, lookupErr("event", err)
	}
	if !event.OwnedBy(actor) {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func ownedParticipation(ctx context.Context, repos output.Repositories, actor, id string, forUpdate bool) (*entities.Participation, *entities.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, nil, err
	}
	find := repos.Participations.FindByID
	if forUpdate {
		find = repos.Participations.FindByIDForUpdate
	}
	p, err := find(ctx, id)
	if err != nil {
		return nil, nil, lookupErr("participation", err)
	}
	event, err := ownedEvent(ctx, repos, actor, p.EventID)
	if err != nil {
		return nil, nil, err
	}
	return p, event, nil
}

func ownedRoom(ctx context.Context, repos output.Repositories, actor, id string, forUpdate bool) (*entities.Room, *entities.Event, error) {
	if err := requireActor(actor); err != nil {
		return nil, nil, err
	}
	find := repos.Rooms.FindByID
	if forUpdate {
		find = repos.Rooms.FindByIDForUpdate
	}
	room, err := find(ctx, id)
	if err != nil {
		return nil, nil, lookupErr("room", err)
	}
	event, err := ownedEvent(ctx, repos, actor, room.EventID)
	if err != nil {
		return nil, nil, err
	}
	return room, event, nil
}
