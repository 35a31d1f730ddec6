package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `e.id, e.owner_id, e.name, e.date_start, e.date_end,
	e.estimated_participants, e.status, e.room_seq, e.created_at, e.updated_at`

type EventRepository struct {
	q querier
}

func NewEventRepository(q querier) *EventRepository {
	return &EventRepository{q: q}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	event.ID = newID(event.ID)
	err := r.q.QueryRow(ctx, `
		INSERT INTO events (id, owner_id, name, date_start, date_end, estimated_participants, status, room_seq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		event.ID, event.OwnerID, event.Name,
		timeToPgtypeDate(event.DateStart), timeToPgtypeDate(event.DateEnd),
		event.EstimatedParticipants, event.Status, event.RoomSeq,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	if !validID(id) {
		return nil, fmt.Errorf("get event by id: %w", domain.ErrNotFound)
	}
	row := r.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events e WHERE e.id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFoundOr(err, "get event by id")
	}
	return &e, nil
}

// FindByOwnerID lists the owner's events, most recent start date first.
func (r *EventRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]entities.EventSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+eventColumns+`,
			(SELECT COUNT(*) FROM rooms r WHERE r.event_id = e.id),
			(SELECT COUNT(*) FROM event_persons ep WHERE ep.event_id = e.id),
			(SELECT COUNT(*) FROM event_persons ep WHERE ep.event_id = e.id AND ep.room_id IS NOT NULL)
		FROM events e
		WHERE e.owner_id = $1
		ORDER BY e.date_start DESC, e.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events by owner id: %w", err)
	}
	defer rows.Close()

	var out []entities.EventSummary
	for rows.Next() {
		var (
			s          entities.EventSummary
			start, end pgtype.Date
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &start, &end,
			&s.EstimatedParticipants, &s.Status, &s.RoomSeq, &s.CreatedAt, &s.UpdatedAt,
			&s.RoomCount, &s.PersonCount, &s.AssignedCount); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		s.DateStart = pgtypeDateToTime(start)
		s.DateEnd = pgtypeDateToTime(end)
		out = append(out, s)
	}
	return out, rows.Err()
}

// ReserveRoomNumbers bumps room_seq under the row lock taken by UPDATE, so
// concurrent reservations for the same event never overlap.
func (r *EventRepository) ReserveRoomNumbers(ctx context.Context, eventID string, n int) (int, error) {
	if !validID(eventID) {
		return 0, fmt.Errorf("reserve room numbers: %w", domain.ErrNotFound)
	}
	var seq int
	err := r.q.QueryRow(ctx, `
		UPDATE events SET room_seq = room_seq + $2, updated_at = now()
		WHERE id = $1
		RETURNING room_seq`, eventID, n).Scan(&seq)
	if err != nil {
		return 0, notFoundOr(err, "reserve room numbers")
	}
	return seq - n + 1, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("delete event: %w", domain.ErrNotFound)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete event: %w", domain.ErrNotFound)
	}
	return nil
}

func scanEvent(row interface{ Scan(...any) error }) (entities.Event, error) {
	var (
		e          entities.Event
		start, end pgtype.Date
	)
	err := row.Scan(&e.ID, &e.OwnerID, &e.Name, &start, &end,
		&e.EstimatedParticipants, &e.Status, &e.RoomSeq, &e.CreatedAt, &e.UpdatedAt)
	e.DateStart = pgtypeDateToTime(start)
	e.DateEnd = pgtypeDateToTime(end)
	return e, err
}
