package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"retreat/internal/domain"
)

// pgtypeDateToTime returns d.Time when Valid, else zero time.
func pgtypeDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func timeToPgtypeDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// validID reports whether id can be compared against a UUID column. Malformed
// ids cannot match any row and are reported as not found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func dietaryToStrings(in []domain.Dietary) []string {
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = string(d)
	}
	return out
}

func stringsToDietary(in []string) []domain.Dietary {
	out := make([]domain.Dietary, len(in))
	for i, s := range in {
		out[i] = domain.Dietary(s)
	}
	return out
}
