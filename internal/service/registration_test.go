package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bop5188-web/conference-hub/internal/memstore"
	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
	"github.com/bop5188-web/conference-hub/internal/service"
)

type fixture struct {
	attendees     *service.AttendeeService
	sessions      *service.SessionService
	registrations *service.RegistrationService
}

func newFixture() fixture {
	store := memstore.New()
	return fixture{
		attendees:     service.NewAttendeeService(store),
		sessions:      service.NewSessionService(store.Sessions(), store),
		registrations: service.NewRegistrationService(store),
	}
}

func (f fixture) addAttendee(t *testing.T, name, email string) *model.Attendee {
	t.Helper()
	a, err := f.attendees.Create(context.Background(), model.CreateAttendeeRequest{Name: name, Email: email})
	require.NoError(t, err)
	return a
}

func (f fixture) addSession(t *testing.T, title, startTime string, capacity int) *model.Session {
	t.Helper()
	s, err := f.sessions.Create(context.Background(), model.CreateSessionRequest{
		Title:     title,
		Speaker:   "Dr. Sarah Williams",
		StartTime: startTime,
		Location:  "Room A",
		Capacity:  &capacity,
	})
	require.NoError(t, err)
	return s
}

func (f fixture) register(attendeeID, sessionID string) (*model.Registration, error) {
	return f.registrations.Register(context.Background(), model.RegisterRequest{
		AttendeeID: attendeeID,
		SessionID:  sessionID,
	})
}

func TestRegisterFillsToCapacity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 3)
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		a := f.addAttendee(t, "Attendee", email)
		reg, err := f.register(a.ID, session.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, reg.AttendeeID)

		details, err := f.sessions.Details(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, details.Registered)
		assert.Equal(t, 3-(i+1), details.Available)
	}

	// The seat after the last one is rejected.
	extra := f.addAttendee(t, "Extra", "d@x.com")
	_, err := f.register(extra.ID, session.ID)
	require.ErrorIs(t, err, repository.ErrSessionFull)

	details, err := f.sessions.Details(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, details.Registered)
}

func TestRegisterDuplicatePair(t *testing.T) {
	f := newFixture()

	session := f.addSession(t, "Intro", "10:00 AM", 2)
	a := f.addAttendee(t, "Jane", "jane@example.com")

	_, err := f.register(a.ID, session.ID)
	require.NoError(t, err)

	_, err = f.register(a.ID, session.ID)
	require.ErrorIs(t, err, repository.ErrAlreadyRegistered)

	details, err := f.sessions.Details(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, details.Registered, "failed duplicate must not change occupancy")
}

func TestRegisterCapacityCheckedBeforeDuplicate(t *testing.T) {
	f := newFixture()

	// With capacity 1 already filled by the same attendee, re-registering
	// hits the capacity check first, not the duplicate check.
	session := f.addSession(t, "Intro", "10:00 AM", 1)
	a := f.addAttendee(t, "Jane", "jane@example.com")

	_, err := f.register(a.ID, session.ID)
	require.NoError(t, err)

	_, err = f.register(a.ID, session.ID)
	require.ErrorIs(t, err, repository.ErrSessionFull)
}

func TestRegisterUnknownSession(t *testing.T) {
	f := newFixture()
	a := f.addAttendee(t, "Jane", "jane@example.com")

	_, err := f.register(a.ID, uuid.New().String())
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRegisterUnknownAttendee(t *testing.T) {
	f := newFixture()
	session := f.addSession(t, "Intro", "10:00 AM", 5)

	_, err := f.register(uuid.New().String(), session.ID)
	require.ErrorIs(t, err, repository.ErrAttendeeNotFound)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name       string
		attendeeID string
		sessionID  string
	}{
		{"both missing", "", ""},
		{"session missing", uuid.New().String(), ""},
		{"attendee missing", "", uuid.New().String()},
		{"attendee malformed", "not-a-uuid", uuid.New().String()},
		{"session malformed", uuid.New().String(), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register(tt.attendeeID, tt.sessionID)
			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestUnregister(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 5)
	a := f.addAttendee(t, "Jane", "jane@example.com")
	b := f.addAttendee(t, "John", "john@example.com")

	_, err := f.register(a.ID, session.ID)
	require.NoError(t, err)
	_, err = f.register(b.ID, session.ID)
	require.NoError(t, err)

	// Unknown pair.
	err = f.registrations.Unregister(ctx, b.ID, uuid.New().String())
	require.ErrorIs(t, err, repository.ErrRegistrationNotFound)

	// Existing pair removes exactly one record.
	require.NoError(t, f.registrations.Unregister(ctx, a.ID, session.ID))

	details, err := f.sessions.Details(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, details.Registered)

	// A second unregister for the same pair fails.
	err = f.registrations.Unregister(ctx, a.ID, session.ID)
	require.ErrorIs(t, err, repository.ErrRegistrationNotFound)
}

func TestDeleteAttendeeCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s1 := f.addSession(t, "Intro", "10:00 AM", 5)
	s2 := f.addSession(t, "Advanced", "2:00 PM", 5)
	a := f.addAttendee(t, "Jane", "jane@example.com")

	_, err := f.register(a.ID, s1.ID)
	require.NoError(t, err)
	_, err = f.register(a.ID, s2.ID)
	require.NoError(t, err)

	require.NoError(t, f.attendees.Delete(ctx, a.ID))

	schedule, err := f.registrations.ListByAttendee(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, schedule)

	for _, id := range []string{s1.ID, s2.ID} {
		details, err := f.sessions.Details(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, details.Registered)
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 5)
	a := f.addAttendee(t, "Jane", "jane@example.com")
	b := f.addAttendee(t, "John", "john@example.com")

	_, err := f.register(a.ID, session.ID)
	require.NoError(t, err)
	_, err = f.register(b.ID, session.ID)
	require.NoError(t, err)

	require.NoError(t, f.sessions.Delete(ctx, session.ID))

	roster, err := f.registrations.ListBySession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, roster)

	for _, id := range []string{a.ID, b.ID} {
		schedule, err := f.registrations.ListByAttendee(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, schedule)
	}
}

func TestMalformedIDsOnRegistrationReads(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// A non-UUID id can never name an existing pair.
	err := f.registrations.Unregister(ctx, "abc", "def")
	require.ErrorIs(t, err, repository.ErrRegistrationNotFound)

	// The permissive lists treat a malformed id like an unknown one.
	roster, err := f.registrations.ListBySession(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, roster)

	schedule, err := f.registrations.ListByAttendee(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, schedule)
}

func TestListBySessionIsPermissive(t *testing.T) {
	f := newFixture()

	// An unknown session is not an error, just an empty roster.
	roster, err := f.registrations.ListBySession(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestListByAttendeeOrdersBySessionTimeText(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Start times sort as text: "10:00 AM" < "2:00 PM" < "9:00 AM", which is
	// not chronological. That is the stored-text ordering contract.
	s9 := f.addSession(t, "Morning", "9:00 AM", 5)
	s10 := f.addSession(t, "Late Morning", "10:00 AM", 5)
	s2 := f.addSession(t, "Afternoon", "2:00 PM", 5)

	a := f.addAttendee(t, "Jane", "jane@example.com")
	for _, id := range []string{s9.ID, s2.ID, s10.ID} {
		_, err := f.register(a.ID, id)
		require.NoError(t, err)
	}

	schedule, err := f.registrations.ListByAttendee(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, []string{"10:00 AM", "2:00 PM", "9:00 AM"},
		[]string{schedule[0].StartTime, schedule[1].StartTime, schedule[2].StartTime})
}

func TestListBySessionNewestFirstWithAttendeeFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 5)
	a := f.addAttendee(t, "Jane", "jane@example.com")
	b := f.addAttendee(t, "John", "john@example.com")

	_, err := f.register(a.ID, session.ID)
	require.NoError(t, err)
	_, err = f.register(b.ID, session.ID)
	require.NoError(t, err)

	roster, err := f.registrations.ListBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "John", roster[0].AttendeeName)
	assert.Equal(t, "john@example.com", roster[0].AttendeeEmail)
	assert.Equal(t, "Jane", roster[1].AttendeeName)
}
