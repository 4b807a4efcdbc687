package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/uniconnect/backend/internal/app/models"
	appRepos "github.com/uniconnect/backend/internal/app/repositories"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

func strPtr(s string) *string {
	return &s
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// CreateDemoData seeds a few colleges and upcoming events so a fresh
// install has something to browse. It is a no-op once any college exists.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var hasColleges bool
	if err := dbPool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM colleges)`).Scan(&hasColleges); err != nil {
		return fmt.Errorf("failed to check existing colleges: %w", err)
	}
	if hasColleges {
		lgr.Debug().Msg("Demo data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo colleges and events...")

	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)

	hashedPassword, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	demoColleges := []*appModels.College{
		{Code: "MIT2024", Name: "Massachusetts Institute of Technology", Email: "admin@mit.edu", Location: "Cambridge, MA", Password: hashedPassword},
		{Code: "STAN2024", Name: "Stanford University", Email: "admin@stanford.edu", Location: "Stanford, CA", Password: hashedPassword},
		{Code: "HARV2024", Name: "Harvard University", Email: "admin@harvard.edu", Location: "Cambridge, MA", Password: hashedPassword},
	}

	for _, college := range demoColleges {
		if err := collegeRepo.Create(ctx, college); err != nil {
			return fmt.Errorf("failed to seed college %s: %w", college.Code, err)
		}
	}

	mit := demoColleges[0]
	stanford := demoColleges[1]
	harvard := demoColleges[2]

	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)

	demoEvents := []*appModels.Event{
		{
			Title:            "AI & Machine Learning Workshop",
			Description:      "Learn the fundamentals of AI and machine learning with hands-on projects. Perfect for beginners and intermediate students.",
			Type:             appModels.EventTypeWorkshop,
			Mode:             appModels.EventModeHybrid,
			StartDate:        isoDate(tomorrow),
			StartTime:        "10:00",
			EndTime:          strPtr("15:00"),
			Venue:            "MIT Tech Lab",
			Address:          strPtr("Building 32, MIT Campus, Cambridge, MA"),
			RegistrationLink: "https://mit.edu/register/ai-workshop",
			ImageURL:         strPtr("https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=500"),
			CollegeID:        mit.ID,
		},
		{
			Title:            "Annual Tech Conference 2024",
			Description:      "Join industry leaders and innovators for cutting-edge presentations on the future of technology.",
			Type:             appModels.EventTypeConference,
			Mode:             appModels.EventModeOffline,
			StartDate:        isoDate(nextWeek),
			EndDate:          strPtr(isoDate(nextWeek.AddDate(0, 0, 1))),
			StartTime:        "09:00",
			EndTime:          strPtr("17:00"),
			Venue:            "Stanford Memorial Auditorium",
			Address:          strPtr("450 Serra Mall, Stanford, CA 94305"),
			RegistrationLink: "https://stanford.edu/register/tech-conf",
			ImageURL:         strPtr("https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=500"),
			CollegeID:        stanford.ID,
		},
		{
			Title:            "Cultural Diversity Symposium",
			Description:      "Explore global cultures through art, music, and food. A celebration of our diverse campus community.",
			Type:             appModels.EventTypeCultural,
			Mode:             appModels.EventModeOffline,
			StartDate:        isoDate(today.AddDate(0, 0, 3)),
			StartTime:        "14:00",
			EndTime:          strPtr("20:00"),
			Venue:            "Harvard Yard",
			Address:          strPtr("Harvard University, Cambridge, MA 02138"),
			RegistrationLink: "https://harvard.edu/register/cultural-symposium",
			ImageURL:         strPtr("https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=500"),
			CollegeID:        harvard.ID,
		},
		{
			Title:            "Startup Hackathon 2024",
			Description:      "48-hour coding marathon to build innovative solutions. Win prizes and connect with industry mentors.",
			Type:             appModels.EventTypeHackathon,
			Mode:             appModels.EventModeHybrid,
			StartDate:        isoDate(today.AddDate(0, 0, 5)),
			EndDate:          strPtr(isoDate(today.AddDate(0, 0, 7))),
			StartTime:        "18:00",
			EndTime:          strPtr("18:00"),
			Venue:            "MIT Innovation Center",
			Address:          strPtr("Building E14, MIT Campus, Cambridge, MA"),
			RegistrationLink: "https://mit.edu/register/hackathon",
			ImageURL:         strPtr("https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=500"),
			CollegeID:        mit.ID,
		},
		{
			Title:            "Career Fair & Networking Event",
			Description:      "Meet top employers and explore career opportunities across various industries.",
			Type:             appModels.EventTypeCareer,
			Mode:             appModels.EventModeOffline,
			StartDate:        isoDate(today.AddDate(0, 0, 10)),
			StartTime:        "10:00",
			EndTime:          strPtr("16:00"),
			Venue:            "Stanford Career Center",
			Address:          strPtr("563 Salvatierra Walk, Stanford, CA 94305"),
			RegistrationLink: "https://stanford.edu/register/career-fair",
			ImageURL:         strPtr("https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=500"),
			CollegeID:        stanford.ID,
		},
	}

	for _, event := range demoEvents {
		if err := eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to seed event %q: %w", event.Title, err)
		}
	}

	lgr.Info().Int("colleges", len(demoColleges)).Int("events", len(demoEvents)).Msg("Demo data initialized")
	return nil
}
