package database

import (
	"context"
	"fmt"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

var _ output.PersonRepository = (*PersonRepository)(nil)

type PersonRepository struct {
	q querier
}

func NewPersonRepository(q querier) *PersonRepository {
	return &PersonRepository{q: q}
}

func (r *PersonRepository) Create(ctx context.Context, person *entities.Person) error {
	person.ID = newID(person.ID)
	err := r.q.QueryRow(ctx, `
		INSERT INTO persons (id, owner_id, name_full, name_display, name_initials, gender,
			default_role, contact_email, contact_phone, contact_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		person.ID, person.OwnerID, person.NameFull, person.NameDisplay, person.NameInitials,
		string(person.Gender), string(person.DefaultRole),
		person.ContactEmail, person.ContactPhone, person.ContactAddress,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (r *PersonRepository) UpdateGender(ctx context.Context, id string, gender domain.Gender) error {
	if !validID(id) {
		return fmt.Errorf("update person gender: %w", domain.ErrNotFound)
	}
	tag, err := r.q.Exec(ctx, `UPDATE persons SET gender = $2, updated_at = now() WHERE id = $1`, id, string(gender))
	if err != nil {
		return fmt.Errorf("update person gender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update person gender: %w", domain.ErrNotFound)
	}
	return nil
}
