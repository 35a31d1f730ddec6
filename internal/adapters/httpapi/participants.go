package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat/internal/ports/input"
)

// ListUnassigned handles GET /events/{eventID}/participants/unassigned
func (h *Handler) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	ps, err := h.assignments.ListUnassigned(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponses(ps))
}

// CreateParticipant handles POST /events/{eventID}/participants
func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req createParticipantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.participants.CreateParticipant(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"), input.CreateParticipantRequest{
		NameFull: req.NameFull,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipationResponse(*p))
}

// CreateParticipantsBatch handles POST /events/{eventID}/participants/batch
func (h *Handler) CreateParticipantsBatch(w http.ResponseWriter, r *http.Request) {
	var req batchParticipantsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ps, err := h.participants.CreateParticipantsBatch(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"), req.Names)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipationResponses(ps))
}

// SeedParticipants handles POST /events/{eventID}/participants/seed
func (h *Handler) SeedParticipants(w http.ResponseWriter, r *http.Request) {
	n, err := h.participants.SeedTestParticipants(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"created": n})
}

// GetParticipation handles GET /participations/{participationID}
func (h *Handler) GetParticipation(w http.ResponseWriter, r *http.Request) {
	p, err := h.participants.GetParticipation(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "participationID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(*p))
}

// UpdateParticipation handles PATCH /participations/{participationID}
func (h *Handler) UpdateParticipation(w http.ResponseWriter, r *http.Request) {
	var req participationPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.participants.UpdateParticipation(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "participationID"), req.toPatch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(*p))
}

// RemoveParticipation handles DELETE /participations/{participationID}
func (h *Handler) RemoveParticipation(w http.ResponseWriter, r *http.Request) {
	if err := h.participants.RemoveParticipation(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "participationID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assign handles PUT /participations/{participationID}/room
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.assignments.Assign(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "participationID"), req.RoomID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(*p))
}

// Unassign handles DELETE /participations/{participationID}/room
func (h *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	p, err := h.assignments.Unassign(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "participationID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(*p))
}
