package application

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/input"
	"retreat/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	store output.Store
}

func NewParticipantService(store output.Store) *ParticipantService {
	return &ParticipantService{store: store}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, actor, eventID string, req input.CreateParticipantRequest) (*entities.Participation, error) {
	name := strings.TrimSpace(req.NameFull)
	if name == "" {
		return nil, domain.Invalidf("name is required")
	}
	gender := req.Gender
	if gender == "" {
		gender = domain.GenderUnknown
	}
	if !gender.Valid() {
		return nil, domain.Invalidf("unknown gender %q", gender)
	}
	role := req.Role
	if role == "" {
		role = domain.RoleParticipant
	}
	if !role.Valid() {
		return nil, domain.Invalidf("unknown role %q", role)
	}

	ctx, span := startSpan(ctx, "ParticipantService.CreateParticipant", attribute.String("event.id", eventID))
	var result *entities.Participation
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
			return err
		}
		p, err := addPerson(ctx, repos, actor, eventID, entities.NewPerson(actor, name, gender, role))
		if err != nil {
			return err
		}
		result = p
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateParticipantsBatch adds one person of unknown gender per non-blank name.
func (s *ParticipantService) CreateParticipantsBatch(ctx context.Context, actor, eventID string, names []string) ([]entities.Participation, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		return nil, domain.Invalidf("at least one name is required")
	}

	ctx, span := startSpan(ctx, "ParticipantService.CreateParticipantsBatch",
		attribute.String("event.id", eventID),
		attribute.Int("names", len(cleaned)),
	)
	var created []entities.Participation
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
			return err
		}
		created = make([]entities.Participation, 0, len(cleaned))
		for _, name := range cleaned {
			p, err := addPerson(ctx, repos, actor, eventID, entities.NewPerson(actor, name, domain.GenderUnknown, domain.RoleParticipant))
			if err != nil {
				return err
			}
			created = append(created, *p)
		}
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SeedTestParticipants fills an empty event with the demo cast. It returns
// the number of participations created, 0 when the event already had any.
func (s *ParticipantService) SeedTestParticipants(ctx context.Context, actor, eventID string) (int, error) {
	ctx, span := startSpan(ctx, "ParticipantService.SeedTestParticipants", attribute.String("event.id", eventID))
	created := 0
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := ownedEvent(ctx, repos, actor, eventID); err != nil {
			return err
		}
		existing, err := repos.Participations.CountByEventID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count participations: %w", err)
		}
		if existing > 0 {
			return nil
		}
		for _, seed := range testPersons {
			if _, err := addPerson(ctx, repos, actor, eventID, entities.NewPerson(actor, seed.name, seed.gender, domain.RoleParticipant)); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (s *ParticipantService) GetParticipation(ctx context.Context, actor, participationID string) (*entities.Participation, error) {
	p, _, err := ownedParticipation(ctx, s.store.Repos(), actor, participationID, false)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateParticipation edits detail fields. Gender is written to the person
// and therefore applies to every event that person attends.
func (s *ParticipantService) UpdateParticipation(ctx context.Context, actor, participationID string, patch entities.ParticipationPatch) (*entities.Participation, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	ctx, span := startSpan(ctx, "ParticipantService.UpdateParticipation", attribute.String("participation.id", participationID))
	var result *entities.Participation
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		p, _, err := ownedParticipation(ctx, repos, actor, participationID, true)
		if err != nil {
			return err
		}
		if patch.Gender != nil && *patch.Gender != p.Person.Gender {
			if err := repos.Persons.UpdateGender(ctx, p.PersonID, *patch.Gender); err != nil {
				return fmt.Errorf("update person gender: %w", err)
			}
		}
		patch.Apply(p)
		if err := repos.Participations.Update(ctx, p); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}
		result = p
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveParticipation deletes the participation; the person is kept.
func (s *ParticipantService) RemoveParticipation(ctx context.Context, actor, participationID string) error {
	ctx, span := startSpan(ctx, "ParticipantService.RemoveParticipation", attribute.String("participation.id", participationID))
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		p, _, err := ownedParticipation(ctx, repos, actor, participationID, true)
		if err != nil {
			return err
		}
		if err := repos.Participations.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("delete participation: %w", err)
		}
		return nil
	})
	endSpan(span, err)
	return err
}

// addPerson stores person and a confirmed, unassigned participation for it.
func addPerson(ctx context.Context, repos output.Repositories, actor, eventID string, person entities.Person) (*entities.Participation, error) {
	if err := repos.Persons.Create(ctx, &person); err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	p := &entities.Participation{
		EventID:             eventID,
		PersonID:            person.ID,
		Role:                person.DefaultRole,
		Status:              domain.StatusConfirmed,
		DietaryRequirements: []domain.Dietary{},
		Person:              person,
	}
	if err := repos.Participations.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participation: %w", err)
	}
	return p, nil
}
