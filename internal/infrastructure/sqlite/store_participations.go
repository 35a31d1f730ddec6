package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

const participationSelect = `
	SELECT ep.id, ep.event_id, ep.person_id, ep.room_id, ep.role, ep.status,
		ep.dietary_requirements, ep.dietary_notified, ep.allergies_text, ep.requests_text,
		ep.requests_managed, ep.move_with_partner, ep.created_at, ep.updated_at,
		p.id, p.owner_id, p.name_full, p.name_display, p.name_initials, p.gender,
		p.default_role, p.contact_email, p.contact_phone, p.contact_address,
		p.created_at, p.updated_at,
		r.display_name, r.internal_number
	FROM event_persons ep
	JOIN persons p ON p.id = ep.person_id
	LEFT JOIN rooms r ON r.id = ep.room_id`

type participationRepository struct {
	q querier
}

func (r *participationRepository) Create(ctx context.Context, p *entities.Participation) error {
	p.ID = newID(p.ID)
	if p.DietaryRequirements == nil {
		p.DietaryRequirements = []domain.Dietary{}
	}
	dietary, err := encodeDietary(p.DietaryRequirements)
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	now := fromMillis(toMillis(time.Now()))
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO event_persons (id, event_id, person_id, room_id, role, status,
			dietary_requirements, dietary_notified, allergies_text, requests_text,
			requests_managed, move_with_partner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.EventID, p.PersonID, nullString(p.RoomID), string(p.Role), string(p.Status),
		dietary, boolToInt(p.DietaryNotified), p.AllergiesText, p.RequestsText,
		boolToInt(p.RequestsManaged), boolToInt(p.MoveWithPartner), toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	p.CreatedAt, p.UpdatedAt = now, now
	return nil
}

func (r *participationRepository) FindByID(ctx context.Context, id string) (*entities.Participation, error) {
	p, err := scanParticipation(r.q.QueryRowContext(ctx, participationSelect+` WHERE ep.id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "get participation by id")
	}
	return &p, nil
}

func (r *participationRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Participation, error) {
	return r.FindByID(ctx, id)
}

func (r *participationRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.event_id = ? ORDER BY p.name_full, ep.id`, eventID)
}

func (r *participationRepository) FindByRoomID(ctx context.Context, roomID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.room_id = ? ORDER BY p.name_full, ep.id`, roomID)
}

func (r *participationRepository) FindUnassigned(ctx context.Context, eventID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.event_id = ? AND ep.room_id IS NULL ORDER BY p.name_full, ep.id`, eventID)
}

func (r *participationRepository) findMany(ctx context.Context, query, id string) ([]entities.Participation, error) {
	rows, err := r.q.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	defer rows.Close()

	var out []entities.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *participationRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_persons WHERE event_id = ?`, eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count participations: %w", err)
	}
	return n, nil
}

func (r *participationRepository) SetRoom(ctx context.Context, id string, roomID *string) error {
	res, err := r.q.ExecContext(ctx, `UPDATE event_persons SET room_id = ?, updated_at = ? WHERE id = ?`,
		nullString(roomID), toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("set participation room: %w", err)
	}
	return requireAffected(res, "set participation room")
}

func (r *participationRepository) Update(ctx context.Context, p *entities.Participation) error {
	dietary, err := encodeDietary(p.DietaryRequirements)
	if err != nil {
		return fmt.Errorf("update participation: %w", err)
	}
	now := fromMillis(toMillis(time.Now()))
	res, err := r.q.ExecContext(ctx, `
		UPDATE event_persons SET role = ?, status = ?, dietary_requirements = ?,
			dietary_notified = ?, allergies_text = ?, requests_text = ?,
			requests_managed = ?, move_with_partner = ?, updated_at = ?
		WHERE id = ?`,
		string(p.Role), string(p.Status), dietary, boolToInt(p.DietaryNotified),
		p.AllergiesText, p.RequestsText, boolToInt(p.RequestsManaged),
		boolToInt(p.MoveWithPartner), toMillis(now), p.ID,
	)
	if err != nil {
		return fmt.Errorf("update participation: %w", err)
	}
	if err := requireAffected(res, "update participation"); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

func (r *participationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM event_persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete participation: %w", err)
	}
	return requireAffected(res, "delete participation")
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func scanParticipation(row interface{ Scan(...any) error }) (entities.Participation, error) {
	var (
		p                                 entities.Participation
		roomID, roomName, roomNumber      sql.NullString
		role, status, gender, defaultRole string
		dietary                           string
		notified, managed, partner        int
		createdAt, updatedAt              int64
		personCreatedAt, personUpdatedAt  int64
	)
	err := row.Scan(&p.ID, &p.EventID, &p.PersonID, &roomID, &role, &status,
		&dietary, &notified, &p.AllergiesText, &p.RequestsText,
		&managed, &partner, &createdAt, &updatedAt,
		&p.Person.ID, &p.Person.OwnerID, &p.Person.NameFull, &p.Person.NameDisplay,
		&p.Person.NameInitials, &gender, &defaultRole, &p.Person.ContactEmail,
		&p.Person.ContactPhone, &p.Person.ContactAddress,
		&personCreatedAt, &personUpdatedAt,
		&roomName, &roomNumber)
	if err != nil {
		return p, err
	}
	if p.DietaryRequirements, err = decodeDietary(dietary); err != nil {
		return p, err
	}
	p.Role = domain.Role(role)
	p.Status = domain.ParticipationStatus(status)
	p.DietaryNotified = notified != 0
	p.RequestsManaged = managed != 0
	p.MoveWithPartner = partner != 0
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	p.Person.Gender = domain.Gender(gender)
	p.Person.DefaultRole = domain.Role(defaultRole)
	p.Person.CreatedAt = fromMillis(personCreatedAt)
	p.Person.UpdatedAt = fromMillis(personUpdatedAt)
	if roomID.Valid {
		id := roomID.String
		p.RoomID = &id
		if roomName.Valid {
			p.Room = &entities.RoomRef{ID: id, DisplayName: roomName.String, InternalNumber: roomNumber.String}
		}
	}
	return p, nil
}
