package database

import (
	"context"
	"fmt"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

var _ output.ParticipationRepository = (*ParticipationRepository)(nil)

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

type ParticipationRepository struct {
	q querier
}

func NewParticipationRepository(q querier) *ParticipationRepository {
	return &ParticipationRepository{q: q}
}

func (r *ParticipationRepository) Create(ctx context.Context, p *entities.Participation) error {
	p.ID = newID(p.ID)
	if p.DietaryRequirements == nil {
		p.DietaryRequirements = []domain.Dietary{}
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO event_persons (id, event_id, person_id, room_id, role, status,
			dietary_requirements, dietary_notified, allergies_text, requests_text,
			requests_managed, move_with_partner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		p.ID, p.EventID, p.PersonID, p.RoomID, string(p.Role), string(p.Status),
		dietaryToStrings(p.DietaryRequirements), p.DietaryNotified, p.AllergiesText,
		p.RequestsText, p.RequestsManaged, p.MoveWithPartner,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	return nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, id string) (*entities.Participation, error) {
	return r.findOne(ctx, participationSelect+` WHERE ep.id = $1`, id)
}

// FindByIDForUpdate locks the event_persons row only; the joined person and
// room rows stay readable by other transactions.
func (r *ParticipationRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Participation, error) {
	return r.findOne(ctx, participationSelect+` WHERE ep.id = $1 FOR UPDATE OF ep`, id)
}

func (r *ParticipationRepository) findOne(ctx context.Context, query, id string) (*entities.Participation, error) {
	if !validID(id) {
		return nil, fmt.Errorf("get participation by id: %w", domain.ErrNotFound)
	}
	p, err := scanParticipation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "get participation by id")
	}
	return &p, nil
}

func (r *ParticipationRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.event_id = $1 ORDER BY p.name_full, ep.id`, eventID)
}

func (r *ParticipationRepository) FindByRoomID(ctx context.Context, roomID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.room_id = $1 ORDER BY p.name_full, ep.id`, roomID)
}

func (r *ParticipationRepository) FindUnassigned(ctx context.Context, eventID string) ([]entities.Participation, error) {
	return r.findMany(ctx, participationSelect+` WHERE ep.event_id = $1 AND ep.room_id IS NULL ORDER BY p.name_full, ep.id`, eventID)
}

func (r *ParticipationRepository) findMany(ctx context.Context, query, id string) ([]entities.Participation, error) {
	if !validID(id) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, query, id)
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

func (r *ParticipationRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	if !validID(eventID) {
		return 0, nil
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM event_persons WHERE event_id = $1`, eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count participations: %w", err)
	}
	return n, nil
}

func (r *ParticipationRepository) SetRoom(ctx context.Context, id string, roomID *string) error {
	if !validID(id) {
		return fmt.Errorf("set participation room: %w", domain.ErrNotFound)
	}
	tag, err := r.q.Exec(ctx, `UPDATE event_persons SET room_id = $2, updated_at = now() WHERE id = $1`, id, roomID)
	if err != nil {
		return fmt.Errorf("set participation room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set participation room: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *ParticipationRepository) Update(ctx context.Context, p *entities.Participation) error {
	err := r.q.QueryRow(ctx, `
		UPDATE event_persons SET role = $2, status = $3, dietary_requirements = $4,
			dietary_notified = $5, allergies_text = $6, requests_text = $7,
			requests_managed = $8, move_with_partner = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, string(p.Role), string(p.Status), dietaryToStrings(p.DietaryRequirements),
		p.DietaryNotified, p.AllergiesText, p.RequestsText, p.RequestsManaged, p.MoveWithPartner,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return notFoundOr(err, "update participation")
	}
	return nil
}

func (r *ParticipationRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("delete participation: %w", domain.ErrNotFound)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM event_persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete participation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete participation: %w", domain.ErrNotFound)
	}
	return nil
}

func scanParticipation(row interface{ Scan(...any) error }) (entities.Participation, error) {
	var (
		p                    entities.Participation
		role, status         string
		gender, defaultRole  string
		dietary              []string
		roomName, roomNumber *string
	)
	err := row.Scan(&p.ID, &p.EventID, &p.PersonID, &p.RoomID, &role, &status,
		&dietary, &p.DietaryNotified, &p.AllergiesText, &p.RequestsText,
		&p.RequestsManaged, &p.MoveWithPartner, &p.CreatedAt, &p.UpdatedAt,
		&p.Person.ID, &p.Person.OwnerID, &p.Person.NameFull, &p.Person.NameDisplay,
		&p.Person.NameInitials, &gender, &defaultRole, &p.Person.ContactEmail,
		&p.Person.ContactPhone, &p.Person.ContactAddress,
		&p.Person.CreatedAt, &p.Person.UpdatedAt,
		&roomName, &roomNumber)
	if err != nil {
		return p, err
	}
	p.Role = domain.Role(role)
	p.Status = domain.ParticipationStatus(status)
	p.DietaryRequirements = stringsToDietary(dietary)
	p.Person.Gender = domain.Gender(gender)
	p.Person.DefaultRole = domain.Role(defaultRole)
	if p.RoomID != nil && roomName != nil && roomNumber != nil {
		p.Room = &entities.RoomRef{ID: *p.RoomID, DisplayName: *roomName, InternalNumber: *roomNumber}
	}
	return p, nil
}
