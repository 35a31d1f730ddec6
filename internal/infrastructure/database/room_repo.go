package database

import (
	"context"
	"fmt"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

var _ output.RoomRepository = (*RoomRepository)(nil)

const roomColumns = `id, event_id, internal_number, display_name, capacity, gender_restriction,
	has_private_bathroom, locked, locked_reason, description, created_at, updated_at`

type RoomRepository struct {
	q querier
}

func NewRoomRepository(q querier) *RoomRepository {
	return &RoomRepository{q: q}
}

func (r *RoomRepository) Create(ctx context.Context, room *entities.Room) error {
	room.ID = newID(room.ID)
	err := r.q.QueryRow(ctx, `
		INSERT INTO rooms (id, event_id, internal_number, display_name, capacity, gender_restriction,
			has_private_bathroom, locked, locked_reason, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		room.ID, room.EventID, room.InternalNumber, room.DisplayName, room.Capacity,
		string(room.GenderRestriction), room.HasPrivateBathroom, room.Locked,
		room.LockedReason, room.Description,
	).Scan(&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*entities.Room, error) {
	return r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Room, error) {
	return r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, id)
}

func (r *RoomRepository) findOne(ctx context.Context, query, id string) (*entities.Room, error) {
	if !validID(id) {
		return nil, fmt.Errorf("get room by id: %w", domain.ErrNotFound)
	}
	room, err := scanRoom(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "get room by id")
	}
	return &room, nil
}

// FindByEventID lists rooms in internal number order ("01" < "02" < ... < "100").
func (r *RoomRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Room, error) {
	if !validID(eventID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+roomColumns+` FROM rooms
		WHERE event_id = $1
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

func (r *RoomRepository) Update(ctx context.Context, room *entities.Room) error {
	err := r.q.QueryRow(ctx, `
		UPDATE rooms SET display_name = $2, capacity = $3, gender_restriction = $4,
			has_private_bathroom = $5, locked = $6, locked_reason = $7, description = $8,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		room.ID, room.DisplayName, room.Capacity, string(room.GenderRestriction),
		room.HasPrivateBathroom, room.Locked, room.LockedReason, room.Description,
	).Scan(&room.UpdatedAt)
	if err != nil {
		return notFoundOr(err, "update room")
	}
	return nil
}

// Delete removes the room. event_persons.room_id is ON DELETE SET NULL.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("delete room: %w", domain.ErrNotFound)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete room: %w", domain.ErrNotFound)
	}
	return nil
}

func scanRoom(row interface{ Scan(...any) error }) (entities.Room, error) {
	var (
		room        entities.Room
		restriction string
	)
	err := row.Scan(&room.ID, &room.EventID, &room.InternalNumber, &room.DisplayName,
		&room.Capacity, &restriction, &room.HasPrivateBathroom, &room.Locked,
		&room.LockedReason, &room.Description, &room.CreatedAt, &room.UpdatedAt)
	room.GenderRestriction = domain.GenderRestriction(restriction)
	return room, err
}
