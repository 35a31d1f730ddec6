// Package httpapi exposes the retreat use cases over JSON/HTTP.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"retreat/internal/ports/input"
	"retreat/internal/ports/output"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Events       input.EventUseCase
	Rooms        input.RoomUseCase
	Participants input.ParticipantUseCase
	Assignments  input.AssignmentUseCase
}

// Handler holds all HTTP handlers for the retreat API.
type Handler struct {
	events       input.EventUseCase
	rooms        input.RoomUseCase
	participants input.ParticipantUseCase
	assignments  input.AssignmentUseCase
	tr           output.Translator
}

func NewHandler(svc Services, tr output.Translator) *Handler {
	return &Handler{
		events:       svc.Events,
		rooms:        svc.Rooms,
		participants: svc.Participants,
		assignments:  svc.Assignments,
		tr:           tr,
	}
}

// Router builds the chi router with the global middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)

	r.Get("/health", HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(h.requireActor)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.CreateEvent)
			r.Get("/", h.ListEvents)
			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", h.GetEvent)
				r.Delete("/", h.DeleteEvent)
				r.Get("/board", h.Board)

				r.Get("/rooms", h.ListRooms)
				r.Post("/rooms", h.CreateRoom)
				r.Post("/rooms/templates", h.CreateRoomsFromTemplates)
				r.Get("/rooms/suggested-templates", h.SuggestTemplates)

				r.Get("/participants/unassigned", h.ListUnassigned)
				r.Post("/participants", h.CreateParticipant)
				r.Post("/participants/batch", h.CreateParticipantsBatch)
				r.Post("/participants/seed", h.SeedParticipants)
			})
		})

		r.Route("/rooms/{roomID}", func(r chi.Router) {
			r.Patch("/", h.UpdateRoom)
			r.Delete("/", h.DeleteRoom)
		})

		r.Route("/participations/{participationID}", func(r chi.Router) {
			r.Get("/", h.GetParticipation)
			r.Patch("/", h.UpdateParticipation)
			r.Delete("/", h.RemoveParticipation)
			r.Put("/room", h.Assign)
			r.Delete("/room", h.Unassign)
		})
	})

	return r
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
