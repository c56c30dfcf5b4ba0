package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
)

// DefaultCapacity is applied when a session is created or updated without an
// explicit capacity.
const DefaultCapacity = 50

// SessionStore is the persistence contract the session service needs.
// Implemented by repository.SessionRepository.
type SessionStore interface {
	Create(ctx context.Context, req model.CreateSessionRequest) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, id string, req model.CreateSessionRequest) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService validates session requests and delegates persistence.
// It also answers the occupancy-augmented details query.
type SessionService struct {
	store         SessionStore
	registrations RegistrationStore
}

// NewSessionService constructs a SessionService.
func NewSessionService(store SessionStore, registrations RegistrationStore) *SessionService {
	return &SessionService{store: store, registrations: registrations}
}

// Create validates the request and inserts a new session.
func (s *SessionService) Create(ctx context.Context, req model.CreateSessionRequest) (*model.Session, error) {
	if err := normalizeSession(&req); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, req)
}

// List returns all sessions, most recently created first.
func (s *SessionService) List(ctx context.Context) ([]model.Session, error) {
	return s.store.List(ctx)
}

// Get returns a single session by id. A malformed id cannot match any
// session, so it reads as not found rather than reaching the store.
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, invalidf("session id is required")
	}
	if uuid.Validate(id) != nil {
		return nil, repository.ErrSessionNotFound
	}
	return s.store.GetByID(ctx, id)
}

// Update validates the request and replaces the session's mutable fields.
// Lowering capacity below current occupancy is accepted; admitted
// registrations are never revoked.
func (s *SessionService) Update(ctx context.Context, id string, req model.CreateSessionRequest) (*model.Session, error) {
	if id == "" {
		return nil, invalidf("session id is required")
	}
	if err := normalizeSession(&req); err != nil {
		return nil, err
	}
	if uuid.Validate(id) != nil {
		return nil, repository.ErrSessionNotFound
	}
	return s.store.Update(ctx, id, req)
}

// Delete removes a session; its registrations are removed with it.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalidf("session id is required")
	}
	if uuid.Validate(id) != nil {
		return repository.ErrSessionNotFound
	}
	return s.store.Delete(ctx, id)
}

// Details returns the session augmented with its occupancy count and the
// seats left. Available is capacity minus occupancy, unclamped.
func (s *SessionService) Details(ctx context.Context, id string) (*model.SessionDetails, error) {
	if id == "" {
		return nil, invalidf("session id is required")
	}
	if uuid.Validate(id) != nil {
		return nil, repository.ErrSessionNotFound
	}
	session, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	registered, err := s.registrations.CountBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.SessionDetails{
		Session:    *session,
		Registered: registered,
		Available:  session.Available(registered),
	}, nil
}

// normalizeSession trims fields, applies the capacity default, and enforces
// the required ones.
func normalizeSession(req *model.CreateSessionRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Speaker = strings.TrimSpace(req.Speaker)
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.Location = strings.TrimSpace(req.Location)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Speaker == "" || req.StartTime == "" || req.Location == "" {
		return invalidf("title, speaker, time, and location are required")
	}
	if req.Capacity == nil {
		capacity := DefaultCapacity
		req.Capacity = &capacity
	}
	if *req.Capacity < 0 {
		return invalidf("capacity must not be negative")
	}
	return nil
}
