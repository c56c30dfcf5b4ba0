package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bop5188-web/conference-hub/internal/model"
)

// RegistrationRepository handles persistence for session registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register enrolls an attendee in a session inside a single transaction.
//
// The naive read-then-write sequence (count registrations, compare with
// capacity, insert) lets two concurrent requests both observe a free seat
// and both insert, overbooking the session. SELECT ... FOR UPDATE takes a
// row-level lock on the session row at the start of the transaction, so
// concurrent attempts for the same session serialize behind each other and
// the occupancy count each one reads is still valid when it inserts.
//
// Check order: session existence, then capacity, then duplicate. Attendee
// existence is not pre-checked; a non-existent attendee is rejected by the
// foreign key at insert time and surfaced as ErrAttendeeNotFound.
func (r *RegistrationRepository) Register(ctx context.Context, attendeeID, sessionID string) (reg *model.Registration, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Lock the session row for the duration of the transaction.
	var capacity int
	err = tx.QueryRow(ctx,
		`SELECT capacity FROM sessions WHERE id = $1 FOR UPDATE`,
		sessionID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("lock session row: %w", err)
	}

	var registered int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE session_id = $1`,
		sessionID,
	).Scan(&registered)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if registered >= capacity {
		return nil, ErrSessionFull
	}

	var dupCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE attendee_id = $1 AND session_id = $2`,
		attendeeID, sessionID,
	).Scan(&dupCount)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if dupCount > 0 {
		return nil, ErrAlreadyRegistered
	}

	reg = &model.Registration{
		ID:         uuid.New().String(),
		AttendeeID: attendeeID,
		SessionID:  sessionID,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO registrations (id, attendee_id, session_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		reg.ID, reg.AttendeeID, reg.SessionID, reg.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrAttendeeNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return reg, nil
}

// Unregister removes the registration for the given pair, or returns
// ErrRegistrationNotFound when none exists.
func (r *RegistrationRepository) Unregister(ctx context.Context, attendeeID, sessionID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM registrations WHERE attendee_id = $1 AND session_id = $2`,
		attendeeID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// ListBySession returns the session's roster joined with attendee name and
// email, newest registration first. An unknown session yields an empty list.
func (r *RegistrationRepository) ListBySession(ctx context.Context, sessionID string) ([]model.SessionRegistration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.attendee_id, r.session_id, r.created_at, a.name, a.email
		 FROM registrations r
		 JOIN attendees a ON r.attendee_id = a.id
		 WHERE r.session_id = $1
		 ORDER BY r.created_at DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list session registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.SessionRegistration
	for rows.Next() {
		var reg model.SessionRegistration
		if err := rows.Scan(&reg.ID, &reg.AttendeeID, &reg.SessionID, &reg.CreatedAt,
			&reg.AttendeeName, &reg.AttendeeEmail); err != nil {
			return nil, fmt.Errorf("scan session registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// ListByAttendee returns the attendee's schedule joined with session details,
// ordered by the session's start_time text ascending. start_time is stored as
// entered ("10:00 AM"), so this is a lexical sort, not a chronological one.
func (r *RegistrationRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]model.AttendeeRegistration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.attendee_id, r.session_id, r.created_at,
		        s.title, s.speaker, s.start_time, s.location
		 FROM registrations r
		 JOIN sessions s ON r.session_id = s.id
		 WHERE r.attendee_id = $1
		 ORDER BY s.start_time ASC`,
		attendeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendee registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.AttendeeRegistration
	for rows.Next() {
		var reg model.AttendeeRegistration
		if err := rows.Scan(&reg.ID, &reg.AttendeeID, &reg.SessionID, &reg.CreatedAt,
			&reg.SessionTitle, &reg.Speaker, &reg.StartTime, &reg.Location); err != nil {
			return nil, fmt.Errorf("scan attendee registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// CountBySession returns the current occupancy of a session.
func (r *RegistrationRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE session_id = $1`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}
