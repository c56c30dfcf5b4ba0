package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/service"
)

// SessionHandler holds the HTTP handlers for session CRUD, the details view,
// and the session-side registration listing.
type SessionHandler struct {
	svc           *service.SessionService
	registrations *service.RegistrationService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(svc *service.SessionService, registrations *service.RegistrationService) *SessionHandler {
	return &SessionHandler{svc: svc, registrations: registrations}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /api/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if sessions == nil {
		sessions = []model.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// Get handles GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Update handles PUT /api/sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Delete handles DELETE /api/sessions/{id}
// The session's registrations are removed with it.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	writeMessage(w, "Session deleted successfully")
}

// Details handles GET /api/sessions/{id}/details
// Returns the session with its occupancy count and remaining seats.
func (h *SessionHandler) Details(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.Details(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// ListRegistrations handles GET /api/sessions/{id}/registrations
// Returns the session's roster, newest registration first.
func (h *SessionHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListBySession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if regs == nil {
		regs = []model.SessionRegistration{}
	}
	writeJSON(w, http.StatusOK, regs)
}
