package sqlite

import (
	"context"
	"fmt"
	"time"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

type personRepository struct {
	q querier
}

func (r *personRepository) Create(ctx context.Context, person *entities.Person) error {
	person.ID = newID(person.ID)
	now := fromMillis(toMillis(time.Now()))
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO persons (id, owner_id, name_full, name_display, name_initials, gender,
			default_role, contact_email, contact_phone, contact_address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		person.ID, person.OwnerID, person.NameFull, person.NameDisplay, person.NameInitials,
		string(person.Gender), string(person.DefaultRole),
		person.ContactEmail, person.ContactPhone, person.ContactAddress,
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	person.CreatedAt, person.UpdatedAt = now, now
	return nil
}

func (r *personRepository) UpdateGender(ctx context.Context, id string, gender domain.Gender) error {
	res, err := r.q.ExecContext(ctx, `UPDATE persons SET gender = ?, updated_at = ? WHERE id = ?`,
		string(gender), toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update person gender: %w", err)
	}
	return requireAffected(res, "update person gender")
}
