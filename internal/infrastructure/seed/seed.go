// Package seed loads the built-in demo data: the badge catalog, a
// handful of users and three school events with pre-filled rosters.
package seed

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
	"github.com/mergington-hub/school-events-hub/pkg/timeutil"
)

// Stores groups the repositories the seeder fills.
type Stores struct {
	Users  user.Repository
	Events event.Repository
	Badges badge.CatalogRepository
}

// Run loads the demo data into the given stores. Seeding is meant for
// a fresh boot; re-running overwrites the same records.
func Run(ctx context.Context, s Stores) error {
	if err := seedBadges(ctx, s.Badges); err != nil {
		return fmt.Errorf("seed badges: %w", err)
	}
	if err := seedUsers(ctx, s.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedEvents(ctx, s.Events); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	return nil
}

func seedBadges(ctx context.Context, repo badge.CatalogRepository) error {
	catalog := []badge.Badge{
		{
			ID:           badge.IDSportsEnthusiast,
			Type:         "sports",
			Name:         "Sports Enthusiast",
			Description:  "Participate in 5 sports events",
			Requirements: "5 sports events",
		},
		{
			ID:           badge.IDAcademicStar,
			Type:         "academic",
			Name:         "Academic Star",
			Description:  "Complete 5 academic events",
			Requirements: "5 academic events",
		},
		{
			ID:           badge.IDEventExplorer,
			Type:         "milestone_10",
			Name:         "Event Explorer",
			Description:  "Participate in 10 events",
			Requirements: "10 events total",
		},
		{
			ID:           badge.IDEarlyBird,
			Type:         "early_bird",
			Name:         "Early Bird",
			Description:  "Register early for 3 events",
			Requirements: "3 early registrations",
		},
		{
			ID:           badge.IDPerfectMonth,
			Type:         "perfect_month",
			Name:         "Perfect Month",
			Description:  "Attend all registered events in a month",
			Requirements: "100% attendance in a month",
		},
	}

	for i := range catalog {
		if err := repo.Save(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(ctx context.Context, repo user.Repository) error {
	seedUsers := []user.NewUserParams{
		{ID: "u1", Name: "Dr. Smith", Email: "smith@mergington.edu", Role: user.RoleOrganizer, Organization: "Chess Club", InitialPoints: 150},
		{ID: "u2", Name: "Prof. Johnson", Email: "johnson@mergington.edu", Role: user.RoleOrganizer, Organization: "Programming Department", InitialPoints: 200},
		{ID: "u3", Name: "Michael Chen", Email: "michael@mergington.edu", Role: user.RoleStudent, InitialPoints: 85},
		{ID: "u4", Name: "Emma Davis", Email: "emma@mergington.edu", Role: user.RoleStudent, InitialPoints: 120},
		{ID: "u5", Name: "Liam Wilson", Email: "liam@mergington.edu", Role: user.RoleStudent, InitialPoints: 95},
		{ID: "u6", Name: "Sophia Johnson", Email: "sophia@mergington.edu", Role: user.RoleStudent, InitialPoints: 110},
		{ID: "u7", Name: "Noah Brown", Email: "noah@mergington.edu", Role: user.RoleStudent, InitialPoints: 75},
		{ID: "u8", Name: "Daniel Garcia", Email: "daniel@mergington.edu", Role: user.RoleStudent, InitialPoints: 65},
	}

	for _, params := range seedUsers {
		u, err := user.NewUser(params)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, repo event.Repository) error {
	now := timeutil.Now()

	type enrollment struct {
		email  string
		name   string
		points int
	}

	seedEvents := []struct {
		params event.NewEventParams
		roster []enrollment
	}{
		{
			params: event.NewEventParams{
				ID:              "e1",
				Name:            "Chess Club",
				Description:     "Learn strategies and compete in chess tournaments",
				Organizer:       "Dr. Smith",
				OrganizerEmail:  "smith@mergington.edu",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				Date:            now.AddDate(0, 0, 10),
				MaxParticipants: 12,
				Type:            event.TypeFree,
			},
			roster: []enrollment{
				{"michael@mergington.edu", "Michael", 10},
				{"daniel@mergington.edu", "Daniel", 15},
			},
		},
		{
			params: event.NewEventParams{
				ID:              "e2",
				Name:            "Programming Class",
				Description:     "Learn programming fundamentals and build software projects",
				Organizer:       "Prof. Johnson",
				OrganizerEmail:  "johnson@mergington.edu",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				Date:            now.AddDate(0, 0, 15),
				MaxParticipants: 20,
				Type:            event.TypePaid,
				Fee:             50.0,
			},
			roster: []enrollment{
				{"emma@mergington.edu", "Emma", 25},
				{"sophia@mergington.edu", "Sophia", 20},
			},
		},
		{
			params: event.NewEventParams{
				ID:              "e3",
				Name:            "Soccer Team",
				Description:     "Join the school soccer team and compete in matches",
				Organizer:       "Coach Wilson",
				OrganizerEmail:  "wilson@mergington.edu",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				Date:            now.AddDate(0, 0, 5),
				MaxParticipants: 22,
				Type:            event.TypeFree,
				ChatGroup:       "https://chat.whatsapp.com/soccer-team",
			},
			roster: []enrollment{
				{"liam@mergington.edu", "Liam", 30},
				{"noah@mergington.edu", "Noah", 28},
			},
		},
	}

	for _, se := range seedEvents {
		e, err := event.NewEvent(se.params)
		if err != nil {
			return err
		}
		for _, enr := range se.roster {
			p, err := e.Register(enr.email, enr.name)
			if err != nil {
				return err
			}
			p.Points = enr.points
		}
		if err := repo.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
