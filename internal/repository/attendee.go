package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bop5188-web/conference-hub/internal/model"
)

// AttendeeRepository handles persistence for attendees.
type AttendeeRepository struct {
	db *pgxpool.Pool
}

// NewAttendeeRepository constructs an AttendeeRepository.
func NewAttendeeRepository(db *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

// Create inserts a new attendee and returns it with a generated UUID.
// A colliding email yields ErrEmailTaken.
func (r *AttendeeRepository) Create(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	attendee := &model.Attendee{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO attendees (id, name, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		attendee.ID, attendee.Name, attendee.Email, attendee.Phone, attendee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert attendee: %w", err)
	}
	return attendee, nil
}

// List returns all attendees, most recently created first.
func (r *AttendeeRepository) List(ctx context.Context) ([]model.Attendee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, created_at
		 FROM attendees
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var attendees []model.Attendee
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// GetByID returns a single attendee or ErrAttendeeNotFound.
func (r *AttendeeRepository) GetByID(ctx context.Context, id string) (*model.Attendee, error) {
	var a model.Attendee
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, created_at
		 FROM attendees WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return &a, nil
}

// Update replaces the mutable fields of an attendee.
func (r *AttendeeRepository) Update(ctx context.Context, id string, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE attendees SET name = $1, email = $2, phone = $3 WHERE id = $4`,
		req.Name, req.Email, req.Phone, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrAttendeeNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an attendee. Registrations referencing it are removed by the
// cascading foreign key in the same statement.
func (r *AttendeeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM attendees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAttendeeNotFound
	}
	return nil
}

// PostgreSQL SQLSTATE classes for constraint violations.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
