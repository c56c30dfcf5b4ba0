package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bop5188-web/conference-hub/internal/model"
	"github.com/bop5188-web/conference-hub/internal/repository"
	"github.com/bop5188-web/conference-hub/internal/service"
)

func TestCreateSessionDefaultsCapacity(t *testing.T) {
	f := newFixture()

	s, err := f.sessions.Create(context.Background(), model.CreateSessionRequest{
		Title:     "Intro",
		Speaker:   "Dr. Sarah Williams",
		StartTime: "10:00 AM",
		Location:  "Room A",
	})
	require.NoError(t, err)
	assert.Equal(t, service.DefaultCapacity, s.Capacity)
}

func TestCreateSessionZeroCapacityIsValid(t *testing.T) {
	f := newFixture()

	// Zero is an explicit choice, not an absent value: the session exists but
	// admits nobody.
	session := f.addSession(t, "Closed Door", "10:00 AM", 0)
	a := f.addAttendee(t, "Jane", "jane@example.com")

	_, err := f.register(a.ID, session.ID)
	require.ErrorIs(t, err, repository.ErrSessionFull)
}

func TestCreateSessionValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	negative := -1

	tests := []struct {
		name string
		req  model.CreateSessionRequest
	}{
		{"missing title", model.CreateSessionRequest{Speaker: "A", StartTime: "10:00 AM", Location: "Room A"}},
		{"missing speaker", model.CreateSessionRequest{Title: "T", StartTime: "10:00 AM", Location: "Room A"}},
		{"missing time", model.CreateSessionRequest{Title: "T", Speaker: "A", Location: "Room A"}},
		{"missing location", model.CreateSessionRequest{Title: "T", Speaker: "A", StartTime: "10:00 AM"}},
		{"negative capacity", model.CreateSessionRequest{Title: "T", Speaker: "A", StartTime: "10:00 AM", Location: "Room A", Capacity: &negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.sessions.Create(ctx, tt.req)
			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestSessionDetails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 5)
	for _, email := range []string{"a@x.com", "b@x.com"} {
		a := f.addAttendee(t, "Attendee", email)
		_, err := f.register(a.ID, session.ID)
		require.NoError(t, err)
	}

	details, err := f.sessions.Details(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, details.Registered)
	assert.Equal(t, 3, details.Available)
	assert.Equal(t, session.ID, details.ID)
	assert.Equal(t, "Intro", details.Title)
}

func TestSessionDetailsNegativeAvailable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session := f.addSession(t, "Intro", "10:00 AM", 2)
	for _, email := range []string{"a@x.com", "b@x.com"} {
		a := f.addAttendee(t, "Attendee", email)
		_, err := f.register(a.ID, session.ID)
		require.NoError(t, err)
	}

	// Lowering capacity below occupancy is accepted and not retroactively
	// enforced; available goes negative rather than clamping.
	capacity := 1
	_, err := f.sessions.Update(ctx, session.ID, model.CreateSessionRequest{
		Title:     "Intro",
		Speaker:   "Dr. Sarah Williams",
		StartTime: "10:00 AM",
		Location:  "Room A",
		Capacity:  &capacity,
	})
	require.NoError(t, err)

	details, err := f.sessions.Details(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, details.Registered)
	assert.Equal(t, -1, details.Available)
}

func TestSessionDetailsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.sessions.Details(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestMalformedSessionIDReadsAsMissing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.sessions.Get(ctx, "abc")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = f.sessions.Details(ctx, "abc")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	err = f.sessions.Delete(ctx, "abc")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionListNewestFirst(t *testing.T) {
	f := newFixture()

	f.addSession(t, "First", "9:00 AM", 5)
	f.addSession(t, "Second", "10:00 AM", 5)

	sessions, err := f.sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Second", sessions[0].Title)
	assert.Equal(t, "First", sessions[1].Title)
}

func TestUpdateSessionNotFound(t *testing.T) {
	f := newFixture()
	capacity := 10

	_, err := f.sessions.Update(context.Background(), uuid.New().String(), model.CreateSessionRequest{
		Title:     "Ghost",
		Speaker:   "Nobody",
		StartTime: "10:00 AM",
		Location:  "Room Z",
		Capacity:  &capacity,
	})
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestDeleteSessionNotFound(t *testing.T) {
	f := newFixture()

	err := f.sessions.Delete(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}
