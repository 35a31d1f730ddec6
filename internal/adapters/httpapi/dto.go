package httpapi

import (
	"time"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type eventResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	DateStart             string    `json:"date_start"`
	DateEnd               string    `json:"date_end"`
	EstimatedParticipants int       `json:"estimated_participants"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type eventSummaryResponse struct {
	eventResponse
	RoomCount     int `json:"room_count"`
	PersonCount   int `json:"person_count"`
	AssignedCount int `json:"assigned_count"`
}

type roomResponse struct {
	ID                 string                   `json:"id"`
	EventID            string                   `json:"event_id"`
	InternalNumber     string                   `json:"internal_number"`
	DisplayName        string                   `json:"display_name"`
	Capacity           int                      `json:"capacity"`
	GenderRestriction  domain.GenderRestriction `json:"gender_restriction"`
	HasPrivateBathroom bool                     `json:"has_private_bathroom"`
	Locked             bool                     `json:"locked"`
	LockedReason       string                   `json:"locked_reason"`
	Description        string                   `json:"description"`
}

type personResponse struct {
	ID           string        `json:"id"`
	NameFull     string        `json:"name_full"`
	NameDisplay  string        `json:"name_display"`
	NameInitials string        `json:"name_initials"`
	Gender       domain.Gender `json:"gender"`
	DefaultRole  domain.Role   `json:"default_role"`
}

type roomRefResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	InternalNumber string `json:"internal_number"`
}

type participationResponse struct {
	ID                  string                     `json:"id"`
	EventID             string                     `json:"event_id"`
	PersonID            string                     `json:"person_id"`
	RoomID              *string                    `json:"room_id"`
	Role                domain.Role                `json:"role"`
	Status              domain.ParticipationStatus `json:"status"`
	DietaryRequirements []domain.Dietary           `json:"dietary_requirements"`
	DietaryNotified     bool                       `json:"dietary_notified"`
	AllergiesText       string                     `json:"allergies_text"`
	RequestsText        string                     `json:"requests_text"`
	RequestsManaged     bool                       `json:"requests_managed"`
	MoveWithPartner     bool                       `json:"move_with_partner"`
	Person              personResponse             `json:"person"`
	Room                *roomRefResponse           `json:"room,omitempty"`
}

type occupancyResponse struct {
	Room               roomResponse            `json:"room"`
	Occupants          []participationResponse `json:"occupants"`
	AssignedCount      int                     `json:"assigned_count"`
	HasTentatives      bool                    `json:"has_tentatives"`
	HasGenderViolation bool                    `json:"has_gender_violation"`
	Status             domain.RoomStatus       `json:"status"`
	StatusLabel        string                  `json:"status_label"`
}

type boardResponse struct {
	Event         eventResponse           `json:"event"`
	Rooms         []occupancyResponse     `json:"rooms"`
	Unassigned    []participationResponse `json:"unassigned"`
	AssignedCount int                     `json:"assigned_count"`
	TotalPersons  int                     `json:"total_persons"`
}

type roomTemplateDTO struct {
	Capacity           int                      `json:"capacity"`
	HasPrivateBathroom bool                     `json:"has_private_bathroom"`
	Quantity           int                      `json:"quantity"`
	GenderRestriction  domain.GenderRestriction `json:"gender_restriction,omitempty"`
	DisplayName        string                   `json:"display_name,omitempty"`
}

type createEventRequest struct {
	Name                  string `json:"name"`
	DateStart             string `json:"date_start"`
	DateEnd               string `json:"date_end"`
	EstimatedParticipants int    `json:"estimated_participants"`
}

type createRoomRequest struct {
	DisplayName        string                   `json:"display_name"`
	Capacity           int                      `json:"capacity"`
	HasPrivateBathroom bool                     `json:"has_private_bathroom"`
	GenderRestriction  domain.GenderRestriction `json:"gender_restriction"`
}

type createRoomsFromTemplatesRequest struct {
	Templates []roomTemplateDTO `json:"templates"`
}

type roomPatchRequest struct {
	DisplayName        *string                   `json:"display_name"`
	Capacity           *int                      `json:"capacity"`
	HasPrivateBathroom *bool                     `json:"has_private_bathroom"`
	GenderRestriction  *domain.GenderRestriction `json:"gender_restriction"`
	Locked             *bool                     `json:"locked"`
	LockedReason       *string                   `json:"locked_reason"`
	Description        *string                   `json:"description"`
}

type createParticipantRequest struct {
	NameFull string        `json:"name_full"`
	Gender   domain.Gender `json:"gender"`
	Role     domain.Role   `json:"role"`
}

type batchParticipantsRequest struct {
	Names []string `json:"names"`
}

type participationPatchRequest struct {
	Role                *domain.Role                `json:"role"`
	Status              *domain.ParticipationStatus `json:"status"`
	Gender              *domain.Gender              `json:"gender"`
	DietaryRequirements *[]domain.Dietary           `json:"dietary_requirements"`
	DietaryNotified     *bool                       `json:"dietary_notified"`
	AllergiesText       *string                     `json:"allergies_text"`
	RequestsText        *string                     `json:"requests_text"`
	RequestsManaged     *bool                       `json:"requests_managed"`
	MoveWithPartner     *bool                       `json:"move_with_partner"`
}

type assignRequest struct {
	RoomID string `json:"room_id"`
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.Invalidf("%s must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

func toEventResponse(e entities.Event) eventResponse {
	return eventResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		DateStart:             e.DateStart.Format(dateLayout),
		DateEnd:               e.DateEnd.Format(dateLayout),
		EstimatedParticipants: e.EstimatedParticipants,
		Status:                e.Status,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

func toRoomResponse(r entities.Room) roomResponse {
	return roomResponse{
		ID:                 r.ID,
		EventID:            r.EventID,
		InternalNumber:     r.InternalNumber,
		DisplayName:        r.Name(),
		Capacity:           r.Capacity,
		GenderRestriction:  r.GenderRestriction,
		HasPrivateBathroom: r.HasPrivateBathroom,
		Locked:             r.Locked,
		LockedReason:       r.LockedReason,
		Description:        r.Description,
	}
}

func toRoomResponses(rooms []entities.Room) []roomResponse {
	out := make([]roomResponse, len(rooms))
	for i := range rooms {
		out[i] = toRoomResponse(rooms[i])
	}
	return out
}

func toParticipationResponse(p entities.Participation) participationResponse {
	dietary := p.DietaryRequirements
	if dietary == nil {
		dietary = []domain.Dietary{}
	}
	resp := participationResponse{
		ID:                  p.ID,
		EventID:             p.EventID,
		PersonID:            p.PersonID,
		RoomID:              p.RoomID,
		Role:                p.Role,
		Status:              p.Status,
		DietaryRequirements: dietary,
		DietaryNotified:     p.DietaryNotified,
		AllergiesText:       p.AllergiesText,
		RequestsText:        p.RequestsText,
		RequestsManaged:     p.RequestsManaged,
		MoveWithPartner:     p.MoveWithPartner,
		Person: personResponse{
			ID:           p.Person.ID,
			NameFull:     p.Person.NameFull,
			NameDisplay:  p.Person.NameDisplay,
			NameInitials: p.Person.NameInitials,
			Gender:       p.Person.Gender,
			DefaultRole:  p.Person.DefaultRole,
		},
	}
	if p.Room != nil {
		resp.Room = &roomRefResponse{ID: p.Room.ID, DisplayName: p.Room.DisplayName, InternalNumber: p.Room.InternalNumber}
	}
	return resp
}

func toParticipationResponses(ps []entities.Participation) []participationResponse {
	out := make([]participationResponse, len(ps))
	for i := range ps {
		out[i] = toParticipationResponse(ps[i])
	}
	return out
}

func toTemplateDTOs(templates []entities.RoomTemplate) []roomTemplateDTO {
	out := make([]roomTemplateDTO, len(templates))
	for i, t := range templates {
		out[i] = roomTemplateDTO(t)
	}
	return out
}

func (d roomTemplateDTO) toTemplate() entities.RoomTemplate {
	return entities.RoomTemplate(d)
}

func (p roomPatchRequest) toPatch() entities.RoomPatch {
	return entities.RoomPatch(p)
}

func (p participationPatchRequest) toPatch() entities.ParticipationPatch {
	return entities.ParticipationPatch(p)
}
