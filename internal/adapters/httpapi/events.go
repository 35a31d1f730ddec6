package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat/internal/ports/input"
)

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	start, err := parseDate("date_start", req.DateStart)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := parseDate("date_end", req.DateEnd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), ActorFromContext(r.Context()), input.CreateEventRequest{
		Name:                  req.Name,
		DateStart:             start,
		DateEnd:               end,
		EstimatedParticipants: req.EstimatedParticipants,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*event))
}

// ListEvents handles GET /events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.events.ListEvents(r.Context(), ActorFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]eventSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = eventSummaryResponse{
			eventResponse: toEventResponse(s.Event),
			RoomCount:     s.RoomCount,
			PersonCount:   s.PersonCount,
			AssignedCount: s.AssignedCount,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetEvent handles GET /events/{eventID}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetEvent(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

// DeleteEvent handles DELETE /events/{eventID}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.events.DeleteEvent(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Board handles GET /events/{eventID}/board
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.assignments.Board(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	locale := h.tr.Locale(r.Header.Get("Accept-Language"))

	resp := boardResponse{
		Event:         toEventResponse(board.Event),
		Rooms:         make([]occupancyResponse, len(board.Rooms)),
		Unassigned:    toParticipationResponses(board.Unassigned),
		AssignedCount: board.AssignedCount(),
		TotalPersons:  board.TotalPersons(),
	}
	for i, o := range board.Rooms {
		resp.Rooms[i] = occupancyResponse{
			Room:               toRoomResponse(o.Room),
			Occupants:          toParticipationResponses(o.Occupants),
			AssignedCount:      o.AssignedCount,
			HasTentatives:      o.HasTentatives,
			HasGenderViolation: o.HasGenderViolation,
			Status:             o.Status,
			StatusLabel:        h.tr.T(locale, "room.status."+string(o.Status), nil),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
