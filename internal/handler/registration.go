package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/service"
)

// RegistrationHandler holds the HTTP handlers for enrolling and unenrolling
// attendees in sessions.
type RegistrationHandler struct {
	svc *service.RegistrationService
}

// NewRegistrationHandler constructs a RegistrationHandler.
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register handles POST /api/registrations
// Admits the attendee if the session has a free seat and the pair is not
// already registered.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// Unregister handles DELETE /api/registrations/{attendeeID}/{sessionID}
func (h *RegistrationHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	attendeeID := chi.URLParam(r, "attendeeID")
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.svc.Unregister(r.Context(), attendeeID, sessionID); err != nil {
		respondError(w, err)
		return
	}
	writeMessage(w, "Successfully unregistered from session")
}
