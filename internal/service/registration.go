package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
)

// RegistrationStore is the persistence contract the registration service
// needs. Implemented by repository.RegistrationRepository. Register must
// enforce the capacity and no-duplicate invariants atomically, checking
// capacity before duplicates.
type RegistrationStore interface {
	Register(ctx context.Context, attendeeID, sessionID string) (*model.Registration, error)
	Unregister(ctx context.Context, attendeeID, sessionID string) error
	ListBySession(ctx context.Context, sessionID string) ([]model.SessionRegistration, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]model.AttendeeRegistration, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}

// RegistrationService is the enrollment workflow: it validates identifiers
// and delegates the guarded insert to the store.
type RegistrationService struct {
	store RegistrationStore
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(store RegistrationStore) *RegistrationService {
	return &RegistrationService{store: store}
}

// Register enrolls an attendee in a session, subject to the session's
// capacity and the one-registration-per-pair rule.
func (s *RegistrationService) Register(ctx context.Context, req model.RegisterRequest) (*model.Registration, error) {
	req.AttendeeID = strings.TrimSpace(req.AttendeeID)
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.AttendeeID == "" || req.SessionID == "" {
		return nil, invalidf("attendee_id and session_id are required")
	}
	if uuid.Validate(req.AttendeeID) != nil {
		return nil, invalidf("attendee_id is not a valid id")
	}
	if uuid.Validate(req.SessionID) != nil {
		return nil, invalidf("session_id is not a valid id")
	}
	return s.store.Register(ctx, req.AttendeeID, req.SessionID)
}

// Unregister removes the attendee's registration for the session.
// A malformed id cannot name an existing pair, so it reads as not found.
func (s *RegistrationService) Unregister(ctx context.Context, attendeeID, sessionID string) error {
	if attendeeID == "" || sessionID == "" {
		return invalidf("attendee id and session id are required")
	}
	if uuid.Validate(attendeeID) != nil || uuid.Validate(sessionID) != nil {
		return repository.ErrRegistrationNotFound
	}
	return s.store.Unregister(ctx, attendeeID, sessionID)
}

// ListBySession returns the session's roster. Unknown and malformed session
// ids yield an empty roster rather than an error.
func (s *RegistrationService) ListBySession(ctx context.Context, sessionID string) ([]model.SessionRegistration, error) {
	if sessionID == "" {
		return nil, invalidf("session id is required")
	}
	if uuid.Validate(sessionID) != nil {
		return nil, nil
	}
	return s.store.ListBySession(ctx, sessionID)
}

// ListByAttendee returns the attendee's schedule, ordered by the sessions'
// start-time text. Unknown and malformed attendee ids yield an empty
// schedule rather than an error.
func (s *RegistrationService) ListByAttendee(ctx context.Context, attendeeID string) ([]model.AttendeeRegistration, error) {
	if attendeeID == "" {
		return nil, invalidf("attendee id is required")
	}
	if uuid.Validate(attendeeID) != nil {
		return nil, nil
	}
	return s.store.ListByAttendee(ctx, attendeeID)
}
