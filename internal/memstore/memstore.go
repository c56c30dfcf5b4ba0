// Package memstore is an in-memory implementation of the service store
// interfaces. It mirrors the repository's contract — same sentinel errors,
// same check ordering, same cascade behavior — and backs the service and
// handler tests so they run without PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
)

// Store holds all three relations behind one mutex.
type Store struct {
	mu            sync.Mutex
	attendees     []model.Attendee
	sessions      []model.Session
	registrations []model.Registration

	base time.Time
	step int
}

// New constructs an empty Store.
func New() *Store {
	return &Store{base: time.Now().UTC()}
}

// tick returns a strictly increasing timestamp so creation-order sorts are
// deterministic.
func (s *Store) tick() time.Time {
	s.step++
	return s.base.Add(time.Duration(s.step) * time.Second)
}

// ─── AttendeeStore ────────────────────────────────────────────────────────────

func (s *Store) Create(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.attendees {
		if a.Email == req.Email {
			return nil, repository.ErrEmailTaken
		}
	}
	attendee := model.Attendee{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: s.tick(),
	}
	s.attendees = append(s.attendees, attendee)
	return &attendee, nil
}

func (s *Store) List(ctx context.Context) ([]model.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Attendee, len(s.attendees))
	for i, a := range s.attendees {
		out[len(s.attendees)-1-i] = a
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*model.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.attendees {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, repository.ErrAttendeeNotFound
}

func (s *Store) Update(ctx context.Context, id string, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Existence first: the repository's unique index cannot fire for a row
	// that does not exist.
	idx := -1
	for i, a := range s.attendees {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, repository.ErrAttendeeNotFound
	}
	for _, a := range s.attendees {
		if a.ID != id && a.Email == req.Email {
			return nil, repository.ErrEmailTaken
		}
	}
	s.attendees[idx].Name = req.Name
	s.attendees[idx].Email = req.Email
	s.attendees[idx].Phone = req.Phone
	return &s.attendees[idx], nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.attendees {
		if a.ID == id {
			s.attendees = append(s.attendees[:i], s.attendees[i+1:]...)
			s.dropRegistrations(func(r model.Registration) bool { return r.AttendeeID == id })
			return nil
		}
	}
	return repository.ErrAttendeeNotFound
}

// ─── SessionStore ─────────────────────────────────────────────────────────────

func (s *Store) CreateSession(ctx context.Context, req model.CreateSessionRequest) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := model.Session{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Speaker:     req.Speaker,
		StartTime:   req.StartTime,
		Location:    req.Location,
		Description: req.Description,
		Capacity:    *req.Capacity,
		CreatedAt:   s.tick(),
	}
	s.sessions = append(s.sessions, session)
	return &session, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[len(s.sessions)-1-i] = sess
	}
	return out, nil
}

func (s *Store) GetSessionByID(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.ID == id {
			return &sess, nil
		}
	}
	return nil, repository.ErrSessionNotFound
}

func (s *Store) UpdateSession(ctx context.Context, id string, req model.CreateSessionRequest) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions[i].Title = req.Title
			s.sessions[i].Speaker = req.Speaker
			s.sessions[i].StartTime = req.StartTime
			s.sessions[i].Location = req.Location
			s.sessions[i].Description = req.Description
			s.sessions[i].Capacity = *req.Capacity
			return &s.sessions[i], nil
		}
	}
	return nil, repository.ErrSessionNotFound
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.dropRegistrations(func(r model.Registration) bool { return r.SessionID == id })
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

// ─── RegistrationStore ────────────────────────────────────────────────────────

// Register applies the same check order as the SQL transaction: session
// existence, capacity, duplicate, then attendee existence (the stand-in for
// the foreign key firing at insert).
func (s *Store) Register(ctx context.Context, attendeeID, sessionID string) (*model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session *model.Session
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			session = &s.sessions[i]
			break
		}
	}
	if session == nil {
		return nil, repository.ErrSessionNotFound
	}

	registered := 0
	for _, r := range s.registrations {
		if r.SessionID == sessionID {
			registered++
		}
	}
	if session.IsFull(registered) {
		return nil, repository.ErrSessionFull
	}

	for _, r := range s.registrations {
		if r.AttendeeID == attendeeID && r.SessionID == sessionID {
			return nil, repository.ErrAlreadyRegistered
		}
	}

	attendeeExists := false
	for _, a := range s.attendees {
		if a.ID == attendeeID {
			attendeeExists = true
			break
		}
	}
	if !attendeeExists {
		return nil, repository.ErrAttendeeNotFound
	}

	reg := model.Registration{
		ID:         uuid.New().String(),
		AttendeeID: attendeeID,
		SessionID:  sessionID,
		CreatedAt:  s.tick(),
	}
	s.registrations = append(s.registrations, reg)
	return &reg, nil
}

func (s *Store) Unregister(ctx context.Context, attendeeID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.registrations {
		if r.AttendeeID == attendeeID && r.SessionID == sessionID {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
			return nil
		}
	}
	return repository.ErrRegistrationNotFound
}

func (s *Store) ListBySession(ctx context.Context, sessionID string) ([]model.SessionRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.SessionRegistration
	for _, r := range s.registrations {
		if r.SessionID != sessionID {
			continue
		}
		row := model.SessionRegistration{Registration: r}
		for _, a := range s.attendees {
			if a.ID == r.AttendeeID {
				row.AttendeeName = a.Name
				row.AttendeeEmail = a.Email
				break
			}
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ListByAttendee(ctx context.Context, attendeeID string) ([]model.AttendeeRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.AttendeeRegistration
	for _, r := range s.registrations {
		if r.AttendeeID != attendeeID {
			continue
		}
		row := model.AttendeeRegistration{Registration: r}
		for _, sess := range s.sessions {
			if sess.ID == r.SessionID {
				row.SessionTitle = sess.Title
				row.Speaker = sess.Speaker
				row.StartTime = sess.StartTime
				row.Location = sess.Location
				break
			}
		}
		out = append(out, row)
	}
	// Lexical sort on the start-time text, matching ORDER BY start_time ASC.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (s *Store) CountBySession(ctx context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.registrations {
		if r.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}

// dropRegistrations removes every registration matching the predicate.
// Callers hold s.mu.
func (s *Store) dropRegistrations(match func(model.Registration) bool) {
	kept := s.registrations[:0]
	for _, r := range s.registrations {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	s.registrations = kept
}

// Sessions returns a SessionStore view of the store. The session methods
// carry a prefix so Store can implement the attendee and session contracts
// side by side.
func (s *Store) Sessions() SessionView { return SessionView{s} }

// SessionView adapts Store to the service.SessionStore interface.
type SessionView struct {
	store *Store
}

func (v SessionView) Create(ctx context.Context, req model.CreateSessionRequest) (*model.Session, error) {
	return v.store.CreateSession(ctx, req)
}

func (v SessionView) List(ctx context.Context) ([]model.Session, error) {
	return v.store.ListSessions(ctx)
}

func (v SessionView) GetByID(ctx context.Context, id string) (*model.Session, error) {
	return v.store.GetSessionByID(ctx, id)
}

func (v SessionView) Update(ctx context.Context, id string, req model.CreateSessionRequest) (*model.Session, error) {
	return v.store.UpdateSession(ctx, id, req)
}

func (v SessionView) Delete(ctx context.Context, id string) error {
	return v.store.DeleteSession(ctx, id)
}
