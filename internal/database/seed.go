package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// SeedSampleData inserts a few demo attendees and sessions for local
// development. Attendees dedupe on email; sessions are only inserted into an
// empty table so restarts do not pile up duplicates.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	attendees := []struct {
		name, email, phone string
	}{
		{"John Doe", "john@example.com", "555-0101"},
		{"Jane Smith", "jane@example.com", "555-0102"},
		{"Bob Johnson", "bob@example.com", "555-0103"},
	}
	for _, a := range attendees {
		_, err := pool.Exec(ctx,
			`INSERT INTO attendees (id, name, email, phone)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.New().String(), a.name, a.email, a.phone,
		)
		if err != nil {
			return fmt.Errorf("seed attendee %s: %w", a.email, err)
		}
	}

	var sessionCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&sessionCount); err != nil {
		return fmt.Errorf("count sessions: %w", err)
	}
	if sessionCount == 0 {
		sessions := []struct {
			title, speaker, startTime, location, description string
			capacity                                         int
		}{
			{"Introduction to Web Development", "Dr. Sarah Williams", "10:00 AM", "Room A", "Learn the basics of modern web development", 30},
			{"Database Design Best Practices", "Prof. Michael Chen", "2:00 PM", "Room B", "Explore database design patterns and optimization", 25},
			{"Go Advanced Topics", "Alex Rodriguez", "4:00 PM", "Room C", "Deep dive into Go performance and scalability", 40},
		}
		for _, s := range sessions {
			_, err := pool.Exec(ctx,
				`INSERT INTO sessions (id, title, speaker, start_time, location, description, capacity)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.New().String(), s.title, s.speaker, s.startTime, s.location, s.description, s.capacity,
			)
			if err != nil {
				return fmt.Errorf("seed session %q: %w", s.title, err)
			}
		}
	}

	log.Info().Msg("sample data seeded")
	return nil
}
