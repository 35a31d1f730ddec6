package sqlite

import (
	"context"
	"fmt"
	"time"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

const roomColumns = `id, event_id, internal_number, display_name, capacity, gender_restriction,
	has_private_bathroom, locked, locked_reason, description, created_at, updated_at`

type roomRepository struct {
	q querier
}

func (r *roomRepository) Create(ctx context.Context, room *entities.Room) error {
	room.ID = newID(room.ID)
	now := fromMillis(toMillis(time.Now()))
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO rooms (id, event_id, internal_number, display_name, capacity, gender_restriction,
			has_private_bathroom, locked, locked_reason, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		room.ID, room.EventID, room.InternalNumber, room.DisplayName, room.Capacity,
		string(room.GenderRestriction), boolToInt(room.HasPrivateBathroom), boolToInt(room.Locked),
		room.LockedReason, room.Description, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	room.CreatedAt, room.UpdatedAt = now, now
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*entities.Room, error) {
	room, err := scanRoom(r.q.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "get room by id")
	}
	return &room, nil
}

// FindByIDForUpdate is FindByID: the IMMEDIATE transaction already holds the
// database write lock.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Room, error) {
	return r.FindByID(ctx, id)
}

func (r *roomRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Room, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+roomColumns+` FROM rooms
		WHERE event_id = ?
		ORDER BY length(internal_number), internal_number`, eventID)
	if err != nil {
		return nil, fmt.Errorf("get rooms by event id: %w", err)
	}
	defer rows.Close()

	var out []entities.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *roomRepository) Update(ctx context.Context, room *entities.Room) error {
	now := fromMillis(toMillis(time.Now()))
	res, err := r.q.ExecContext(ctx, `
		UPDATE rooms SET display_name = ?, capacity = ?, gender_restriction = ?,
			has_private_bathroom = ?, locked = ?, locked_reason = ?, description = ?,
			updated_at = ?
		WHERE id = ?`,
		room.DisplayName, room.Capacity, string(room.GenderRestriction),
		boolToInt(room.HasPrivateBathroom), boolToInt(room.Locked), room.LockedReason,
		room.Description, toMillis(now), room.ID,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if err := requireAffected(res, "update room"); err != nil {
		return err
	}
	room.UpdatedAt = now
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return requireAffected(res, "delete room")
}

func scanRoom(row interface{ Scan(...any) error }) (entities.Room, error) {
	var (
		room                 entities.Room
		restriction          string
		bathroom, locked     int
		createdAt, updatedAt int64
	)
	err := row.Scan(&room.ID, &room.EventID, &room.InternalNumber, &room.DisplayName,
		&room.Capacity, &restriction, &bathroom, &locked,
		&room.LockedReason, &room.Description, &createdAt, &updatedAt)
	room.GenderRestriction = domain.GenderRestriction(restriction)
	room.HasPrivateBathroom = bathroom != 0
	room.Locked = locked != 0
	room.CreatedAt = fromMillis(createdAt)
	room.UpdatedAt = fromMillis(updatedAt)
	return room, err
}
