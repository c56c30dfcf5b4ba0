// Package repository implements all database queries for the conference
// backend. It uses pgx directly (no ORM).
package repository

import "errors"

// Domain outcomes surfaced as sentinel errors so the service and handler
// layers can branch on them with errors.Is.
var (
	// ErrAttendeeNotFound is returned when an attendee id does not exist.
	ErrAttendeeNotFound = errors.New("attendee not found")

	// ErrSessionNotFound is returned when a session id does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRegistrationNotFound is returned when no registration exists for a
	// given (attendee, session) pair.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrSessionFull is returned when a session has no remaining capacity.
	ErrSessionFull = errors.New("session is full")

	// ErrAlreadyRegistered is returned when the attendee already holds a
	// registration for the session.
	ErrAlreadyRegistered = errors.New("already registered for this session")

	// ErrEmailTaken is returned when an attendee email collides with an
	// existing one.
	ErrEmailTaken = errors.New("email already exists")
)
