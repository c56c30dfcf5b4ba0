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

// SessionRepository handles persistence for sessions.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session and returns it with a generated UUID.
// Capacity must already be resolved by the caller (default applied).
func (r *SessionRepository) Create(ctx context.Context, req model.CreateSessionRequest) (*model.Session, error) {
	session := &model.Session{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Speaker:     req.Speaker,
		StartTime:   req.StartTime,
		Location:    req.Location,
		Description: req.Description,
		Capacity:    *req.Capacity,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, title, speaker, start_time, location, description, capacity, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.Title, session.Speaker, session.StartTime,
		session.Location, session.Description, session.Capacity, session.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// List returns all sessions, most recently created first.
func (r *SessionRepository) List(ctx context.Context) ([]model.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, speaker, start_time, location, description, capacity, created_at
		 FROM sessions
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.Title, &s.Speaker, &s.StartTime,
			&s.Location, &s.Description, &s.Capacity, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetByID returns a single session or ErrSessionNotFound.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.QueryRow(ctx,
		`SELECT id, title, speaker, start_time, location, description, capacity, created_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Title, &s.Speaker, &s.StartTime,
		&s.Location, &s.Description, &s.Capacity, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Update replaces the mutable fields of a session. Lowering capacity below
// the current occupancy is accepted; existing registrations stay.
func (r *SessionRepository) Update(ctx context.Context, id string, req model.CreateSessionRequest) (*model.Session, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE sessions
		 SET title = $1, speaker = $2, start_time = $3, location = $4, description = $5, capacity = $6
		 WHERE id = $7`,
		req.Title, req.Speaker, req.StartTime, req.Location, req.Description, *req.Capacity, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrSessionNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a session. Registrations referencing it are removed by the
// cascading foreign key in the same statement.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}
