package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat/internal/domain/entities"
	"retreat/internal/ports/input"
)

// ListRooms handles GET /events/{eventID}/rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponses(rooms))
}

// CreateRoom handles POST /events/{eventID}/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	room, err := h.rooms.CreateRoom(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"), input.CreateRoomRequest{
		DisplayName:        req.DisplayName,
		Capacity:           req.Capacity,
		HasPrivateBathroom: req.HasPrivateBathroom,
		GenderRestriction:  req.GenderRestriction,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomResponse(*room))
}

// CreateRoomsFromTemplates handles POST /events/{eventID}/rooms/templates
func (h *Handler) CreateRoomsFromTemplates(w http.ResponseWriter, r *http.Request) {
	var req createRoomsFromTemplatesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	templates := make([]entities.RoomTemplate, len(req.Templates))
	for i, t := range req.Templates {
		templates[i] = t.toTemplate()
	}
	rooms, err := h.rooms.CreateRoomsFromTemplates(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"), templates)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomResponses(rooms))
}

// SuggestTemplates handles GET /events/{eventID}/rooms/suggested-templates
func (h *Handler) SuggestTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.rooms.SuggestTemplates(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateDTOs(templates))
}

// UpdateRoom handles PATCH /rooms/{roomID}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	room, err := h.rooms.UpdateRoom(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "roomID"), req.toPatch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponse(*room))
}

// DeleteRoom handles DELETE /rooms/{roomID}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.rooms.DeleteRoom(r.Context(), ActorFromContext(r.Context()), chi.URLParam(r, "roomID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
