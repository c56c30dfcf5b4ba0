package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/service"
)

// AttendeeHandler holds the HTTP handlers for attendee CRUD and the
// attendee-side registration listing.
type AttendeeHandler struct {
	svc           *service.AttendeeService
	registrations *service.RegistrationService
}

// NewAttendeeHandler constructs an AttendeeHandler.
func NewAttendeeHandler(svc *service.AttendeeService, registrations *service.RegistrationService) *AttendeeHandler {
	return &AttendeeHandler{svc: svc, registrations: registrations}
}

// Create handles POST /api/attendees
func (h *AttendeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAttendeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	attendee, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attendee)
}

// List handles GET /api/attendees
func (h *AttendeeHandler) List(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	// Return an empty array rather than null for better client compatibility.
	if attendees == nil {
		attendees = []model.Attendee{}
	}
	writeJSON(w, http.StatusOK, attendees)
}

// Get handles GET /api/attendees/{id}
func (h *AttendeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	attendee, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attendee)
}

// Update handles PUT /api/attendees/{id}
func (h *AttendeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAttendeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	attendee, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attendee)
}

// Delete handles DELETE /api/attendees/{id}
// The attendee's registrations are removed with them.
func (h *AttendeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	writeMessage(w, "Attendee deleted successfully")
}

// ListRegistrations handles GET /api/attendees/{id}/registrations
// Returns the attendee's schedule ordered by session start-time text.
func (h *AttendeeHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListByAttendee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if regs == nil {
		regs = []model.AttendeeRegistration{}
	}
	writeJSON(w, http.StatusOK, regs)
}
