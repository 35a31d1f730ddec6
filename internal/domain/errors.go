package domain

import "errors"

// Domain errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrRoomClosed        = errors.New("room is closed")
	ErrGenderRestriction = errors.New("gender restriction violation")
	ErrValidation        = errors.New("validation error")
	ErrUnauthenticated   = errors.New("organizer identity is required")
)

// Error codes exposed to adapters. Kept stable: they are used as i18n keys
// ("error.<code>") and in HTTP error envelopes.
const (
	CodeNotFound          = "not_found"
	CodeRoomClosed        = "room_closed"
	CodeGenderRestriction = "gender_restriction"
	CodeValidation        = "validation"
	CodeUnauthenticated   = "unauthenticated"
)

// Code returns the stable code of the domain error wrapped in err,
// or "" when err is nil or not a domain error.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrRoomClosed):
		return CodeRoomClosed
	case errors.Is(err, ErrGenderRestriction):
		return CodeGenderRestriction
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	default:
		return ""
	}
}
