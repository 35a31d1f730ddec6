package entities

import (
	"time"

	"retreat/internal/domain"
)

// Participation links a Person to an Event. It is the unit placed in a room;
// RoomID nil means the unassigned pool.
type Participation struct {
	ID                  string
	EventID             string
	PersonID            string
	RoomID              *string
	Role                domain.Role
	Status              domain.ParticipationStatus
	DietaryRequirements []domain.Dietary
	DietaryNotified     bool
	AllergiesText       string
	RequestsText        string
	RequestsManaged     bool
	MoveWithPartner     bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Person is loaded alongside the participation by repositories.
	Person Person
	// Room summary, set only by detail lookups.
	Room *RoomRef
}

// RoomRef is the room summary shown on a participation detail.
type RoomRef struct {
	ID             string
	DisplayName    string
	InternalNumber string
}

func (p *Participation) Assigned() bool {
	return p.RoomID != nil
}

// InRoom reports whether the participation currently occupies roomID.
func (p *Participation) InRoom(roomID string) bool {
	return p.RoomID != nil && *p.RoomID == roomID
}

// ParticipationPatch holds optional detail edits. Nil fields are left unchanged.
// The room reference is deliberately absent: only assign/unassign move people.
type ParticipationPatch struct {
	Role                *domain.Role
	Status              *domain.ParticipationStatus
	Gender              *domain.Gender
	DietaryRequirements *[]domain.Dietary
	DietaryNotified     *bool
	AllergiesText       *string
	RequestsText        *string
	RequestsManaged     *bool
	MoveWithPartner     *bool
}

func (patch ParticipationPatch) Validate() error {
	if patch.Role != nil && !patch.Role.Valid() {
		return domain.Invalidf("unknown role %q", *patch.Role)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Invalidf("unknown status %q", *patch.Status)
	}
	if patch.Gender != nil && !patch.Gender.Valid() {
		return domain.Invalidf("unknown gender %q", *patch.Gender)
	}
	if patch.DietaryRequirements != nil {
		for _, d := range *patch.DietaryRequirements {
			if !d.Valid() {
				return domain.Invalidf("unknown dietary requirement %q", d)
			}
		}
	}
	return nil
}

// Apply copies the set fields onto p. Gender goes to the embedded Person.
func (patch ParticipationPatch) Apply(p *Participation) {
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Gender != nil {
		p.Person.Gender = *patch.Gender
	}
	if patch.DietaryRequirements != nil {
		p.DietaryRequirements = NormalizeDietary(*patch.DietaryRequirements)
	}
	if patch.DietaryNotified != nil {
		p.DietaryNotified = *patch.DietaryNotified
	}
	if patch.AllergiesText != nil {
		p.AllergiesText = *patch.AllergiesText
	}
	if patch.RequestsText != nil {
		p.RequestsText = *patch.RequestsText
	}
	if patch.RequestsManaged != nil {
		p.RequestsManaged = *patch.RequestsManaged
	}
	if patch.MoveWithPartner != nil {
		p.MoveWithPartner = *patch.MoveWithPartner
	}
}

// NormalizeDietary drops duplicates while keeping the first-seen order.
func NormalizeDietary(in []domain.Dietary) []domain.Dietary {
	out := make([]domain.Dietary, 0, len(in))
	seen := make(map[domain.Dietary]bool, len(in))
	for _, d := range in {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
