package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
)

// AttendeeStore is the persistence contract the attendee service needs.
// Implemented by repository.AttendeeRepository.
type AttendeeStore interface {
	Create(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error)
	List(ctx context.Context) ([]model.Attendee, error)
	GetByID(ctx context.Context, id string) (*model.Attendee, error)
	Update(ctx context.Context, id string, req model.CreateAttendeeRequest) (*model.Attendee, error)
	Delete(ctx context.Context, id string) error
}

// AttendeeService validates attendee requests and delegates persistence.
type AttendeeService struct {
	store AttendeeStore
}

// NewAttendeeService constructs an AttendeeService.
func NewAttendeeService(store AttendeeStore) *AttendeeService {
	return &AttendeeService{store: store}
}

// Create validates the request and inserts a new attendee.
func (s *AttendeeService) Create(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	if err := normalizeAttendee(&req); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, req)
}

// List returns all attendees, most recently created first.
func (s *AttendeeService) List(ctx context.Context) ([]model.Attendee, error) {
	return s.store.List(ctx)
}

// Get returns a single attendee by id. A malformed id cannot match any
// attendee, so it reads as not found rather than reaching the store.
func (s *AttendeeService) Get(ctx context.Context, id string) (*model.Attendee, error) {
	if id == "" {
		return nil, invalidf("attendee id is required")
	}
	if uuid.Validate(id) != nil {
		return nil, repository.ErrAttendeeNotFound
	}
	return s.store.GetByID(ctx, id)
}

// Update validates the request and replaces the attendee's mutable fields.
func (s *AttendeeService) Update(ctx context.Context, id string, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	if id == "" {
		return nil, invalidf("attendee id is required")
	}
	if err := normalizeAttendee(&req); err != nil {
		return nil, err
	}
	if uuid.Validate(id) != nil {
		return nil, repository.ErrAttendeeNotFound
	}
	return s.store.Update(ctx, id, req)
}

// Delete removes an attendee; their registrations are removed with them.
func (s *AttendeeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalidf("attendee id is required")
	}
	if uuid.Validate(id) != nil {
		return repository.ErrAttendeeNotFound
	}
	return s.store.Delete(ctx, id)
}

// normalizeAttendee trims fields, lower-cases the email, and enforces the
// required ones.
func normalizeAttendee(req *model.CreateAttendeeRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" {
		return invalidf("name and email are required")
	}
	if !isValidEmail(req.Email) {
		return invalidf("email is not a valid email address")
	}
	return nil
}

// isValidEmail does a basic structural check (no external deps).
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
