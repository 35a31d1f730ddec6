package entities

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"retreat/internal/domain"
)

// Person is an individual in an organizer's address book, reused across events.
type Person struct {
	ID             string
	OwnerID        string
	NameFull       string
	NameDisplay    string
	NameInitials   string
	Gender         domain.Gender
	DefaultRole    domain.Role
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPerson builds a person with derived display name and initials.
func NewPerson(ownerID, nameFull string, gender domain.Gender, role domain.Role) Person {
	nameFull = strings.Join(strings.Fields(nameFull), " ")
	return Person{
		OwnerID:      ownerID,
		NameFull:     nameFull,
		NameDisplay:  DisplayName(nameFull),
		NameInitials: Initials(nameFull),
		Gender:       gender,
		DefaultRole:  role,
	}
}

// DisplayName returns "First L." for multi-word names and the name itself otherwise.
func DisplayName(nameFull string) string {
	parts := strings.Fields(nameFull)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	first, _ := utf8.DecodeRuneInString(parts[1])
	return parts[0] + " " + string(first) + "."
}

// Initials returns the uppercased first letters of the first two name tokens.
func Initials(nameFull string) string {
	var b strings.Builder
	for i, part := range strings.Fields(nameFull) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
