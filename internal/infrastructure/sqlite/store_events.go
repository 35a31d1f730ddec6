package sqlite

import (
	"context"
	"fmt"
	"time"

	"retreat/internal/domain/entities"
)

const eventColumns = `e.id, e.owner_id, e.name, e.date_start, e.date_end,
	e.estimated_participants, e.status, e.room_seq, e.created_at, e.updated_at`

type eventRepository struct {
	q querier
}

func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	event.ID = newID(event.ID)
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO events (id, owner_id, name, date_start, date_end, estimated_participants,
			status, room_seq, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.OwnerID, event.Name, toDate(event.DateStart), toDate(event.DateEnd),
		event.EstimatedParticipants, event.Status, event.RoomSeq, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.CreatedAt = fromMillis(toMillis(now))
	event.UpdatedAt = event.CreatedAt
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events e WHERE e.id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFoundOr(err, "get event by id")
	}
	return &e, nil
}

func (r *eventRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]entities.EventSummary, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+eventColumns+`,
			(SELECT COUNT(*) FROM rooms r WHERE r.event_id = e.id),
			(SELECT COUNT(*) FROM event_persons ep WHERE ep.event_id = e.id),
			(SELECT COUNT(*) FROM event_persons ep WHERE ep.event_id = e.id AND ep.room_id IS NOT NULL)
		FROM events e
		WHERE e.owner_id = ?
		ORDER BY e.date_start DESC, e.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events by owner id: %w", err)
	}
	defer rows.Close()

	var out []entities.EventSummary
	for rows.Next() {
		var (
			s                    entities.EventSummary
			start, end           string
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &start, &end,
			&s.EstimatedParticipants, &s.Status, &s.RoomSeq, &createdAt, &updatedAt,
			&s.RoomCount, &s.PersonCount, &s.AssignedCount); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		if err := fillEvent(&s.Event, start, end, createdAt, updatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepository) ReserveRoomNumbers(ctx context.Context, eventID string, n int) (int, error) {
	var seq int
	err := r.q.QueryRowContext(ctx, `
		UPDATE events SET room_seq = room_seq + ?, updated_at = ?
		WHERE id = ?
		RETURNING room_seq`, n, toMillis(time.Now()), eventID).Scan(&seq)
	if err != nil {
		return 0, notFoundOr(err, "reserve room numbers")
	}
	return seq - n + 1, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return requireAffected(res, "delete event")
}

func scanEvent(row interface{ Scan(...any) error }) (entities.Event, error) {
	var (
		e                    entities.Event
		start, end           string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Name, &start, &end,
		&e.EstimatedParticipants, &e.Status, &e.RoomSeq, &createdAt, &updatedAt); err != nil {
		return e, err
	}
	return e, fillEvent(&e, start, end, createdAt, updatedAt)
}

func fillEvent(e *entities.Event, start, end string, createdAt, updatedAt int64) error {
	var err error
	if e.DateStart, err = fromDate(start); err != nil {
		return fmt.Errorf("parse event start date: %w", err)
	}
	if e.DateEnd, err = fromDate(end); err != nil {
		return fmt.Errorf("parse event end date: %w", err)
	}
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return nil
}
