// Command viewdb dumps the conference tables to the console for quick
// inspection during development.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bop5188-web/conference-hub/internal/config"
	"github.com/bop5188-web/conference-hub/internal/database"
	"github.com/bop5188-web/conference-hub/internal/repository"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	attendees, err := repository.NewAttendeeRepository(pool).List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list attendees:", err)
		os.Exit(1)
	}
	fmt.Println("=== ATTENDEES ===")
	if len(attendees) == 0 {
		fmt.Println("No attendees found.")
	}
	for _, a := range attendees {
		phone := a.Phone
		if phone == "" {
			phone = "N/A"
		}
		fmt.Printf("ID: %s, Name: %s, Email: %s, Phone: %s, Registered: %s\n",
			a.ID, a.Name, a.Email, phone, a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Println()

	sessions, err := repository.NewSessionRepository(pool).List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list sessions:", err)
		os.Exit(1)
	}
	fmt.Println("=== SESSIONS ===")
	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
	}
	regRepo := repository.NewRegistrationRepository(pool)
	for _, s := range sessions {
		fmt.Printf("ID: %s, Title: %s, Speaker: %s, Time: %s, Location: %s, Capacity: %d\n",
			s.ID, s.Title, s.Speaker, s.StartTime, s.Location, s.Capacity)
	}
	fmt.Println()

	fmt.Println("=== REGISTRATIONS ===")
	total := 0
	for _, s := range sessions {
		regs, err := regRepo.ListBySession(ctx, s.ID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list registrations:", err)
			os.Exit(1)
		}
		for _, reg := range regs {
			fmt.Printf("ID: %s, Attendee: %s <%s>, Session: %s, Registered: %s\n",
				reg.ID, reg.AttendeeName, reg.AttendeeEmail, s.Title,
				reg.CreatedAt.Format("2006-01-02 15:04:05"))
			total++
		}
	}
	if total == 0 {
		fmt.Println("No registrations found.")
	}
}
