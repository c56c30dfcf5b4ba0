// Package model defines the core domain types for the conference backend.
package model

import "time"

// Attendee is a registered conference participant.
type Attendee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a scheduled conference talk with limited seating.
// StartTime is free-form text (e.g. "10:00 AM") as entered by the organizer;
// any ordering on it is lexical.
type Session struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	StartTime   string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

// Available returns the number of seats left given the current occupancy.
// Not clamped at zero.
func (s *Session) Available(registered int) int {
	return s.Capacity - registered
}

// IsFull reports whether the session has no seats left.
func (s *Session) IsFull(registered int) bool {
	return registered >= s.Capacity
}

// Registration links an attendee to a session. It is a pure relationship
// record: deleting either endpoint removes it.
type Registration struct {
	ID         string    `json:"id"`
	AttendeeID string    `json:"attendee_id"`
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionRegistration is a registration joined with its attendee,
// as returned when listing a session's roster.
type SessionRegistration struct {
	Registration
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email"`
}

// AttendeeRegistration is a registration joined with its session,
// as returned when listing an attendee's schedule.
type AttendeeRegistration struct {
	Registration
	SessionTitle string `json:"session_title"`
	Speaker      string `json:"speaker"`
	StartTime    string `json:"time"`
	Location     string `json:"location"`
}

// SessionDetails is a session augmented with its current occupancy.
// Available is capacity minus registered and is not clamped: lowering a
// session's capacity below its occupancy yields a negative value.
type SessionDetails struct {
	Session
	Registered int `json:"registered"`
	Available  int `json:"available"`
}

// CreateAttendeeRequest is the payload for creating or updating an attendee.
type CreateAttendeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateSessionRequest is the payload for creating or updating a session.
// Capacity is a pointer so an absent capacity (defaults to 50) can be told
// apart from an explicit zero.
type CreateSessionRequest struct {
	Title       string `json:"title"`
	Speaker     string `json:"speaker"`
	StartTime   string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
}

// RegisterRequest is the payload for enrolling an attendee in a session.
type RegisterRequest struct {
	AttendeeID string `json:"attendee_id"`
	SessionID  string `json:"session_id"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
