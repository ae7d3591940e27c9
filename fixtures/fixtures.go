package fixtures

import (
	"fmt"
	"log"
	"time"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData seeds demo teams across all sports and a few matches
// in each status
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	teams, err := f.generateTeams()
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	if err := f.generateMatches(teams); err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

// CleanTestData removes everything the generator created
func (f *Fixtures) CleanTestData() error {
	log.Println("Cleaning fixtures...")

	if err := f.db.Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("failed to clean matches: %w", err)
	}
	if err := f.db.Where("1 = 1").Delete(&models.Team{}).Error; err != nil {
		return fmt.Errorf("failed to clean teams: %w", err)
	}

	log.Println("Fixtures cleaned")
	return nil
}

func (f *Fixtures) generateTeams() ([]models.Team, error) {
	teams := []models.Team{
		{
			Name:    "Crescent Ballers",
			Sport:   "basketball",
			Captain: "Ahmed Hassan",
			Contact: "ahmed@example.com",
			Players: models.Players{"Ahmed Hassan", "Bilal Khan", "Omar Siddiqui", "Yusuf Ali", "Zaid Rahman"},
			Status:  models.TeamStatusConfirmed,
		},
		{
			Name:    "Downtown Dunkers",
			Sport:   "basketball",
			Captain: "Karim Aziz",
			Players: models.Players{"Karim Aziz", "Sami Malik", "Tariq Osman"},
			Status:  models.TeamStatusConfirmed,
		},
		{
			Name:    "Net Setters",
			Sport:   "volleyball",
			Captain: "Layla Ahmed",
			Contact: "layla@example.com",
			Players: models.Players{"Layla Ahmed", "Noor Farouk", "Huda Samir", "Rania Tahir"},
			Status:  models.TeamStatusConfirmed,
		},
		{
			Name:    "Spike Squad",
			Sport:   "volleyball",
			Captain: "Mustafa Noor",
			Players: models.Players{},
			Status:  models.TeamStatusPending,
		},
		{
			Name:    "Paddle Masters",
			Sport:   "ping-pong",
			Captain: "Idris Qureshi",
			Players: models.Players{"Idris Qureshi", "Hamza Farid"},
			Status:  models.TeamStatusConfirmed,
		},
		{
			Name:    "Spin Doctors",
			Sport:   "ping-pong",
			Captain: "Salim Baig",
			Players: models.Players{"Salim Baig"},
			Status:  models.TeamStatusPending,
		},
	}

	for i := range teams {
		if err := f.db.Create(&teams[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("Created %d teams", len(teams))
	return teams, nil
}

func (f *Fixtures) generateMatches(teams []models.Team) error {
	score := func(a, b int) models.Score {
		return models.Score{Team1: &a, Team2: &b}
	}
	winner := func(name string) *string {
		return &name
	}

	now := time.Now()
	matches := []models.Match{
		{
			Sport:    "basketball",
			Team1:    "Crescent Ballers",
			Team2:    "Downtown Dunkers",
			Date:     now.AddDate(0, 0, 7),
			Time:     "18:00",
			Location: "Main Court",
			Status:   models.MatchStatusScheduled,
		},
		{
			Sport:    "volleyball",
			Team1:    "Net Setters",
			Team2:    "Spike Squad",
			Date:     now,
			Time:     "19:30",
			Location: "Gym B",
			Score:    score(1, 1),
			Status:   models.MatchStatusOngoing,
		},
		{
			Sport:    "ping-pong",
			Team1:    "Paddle Masters",
			Team2:    "Spin Doctors",
			Date:     now.AddDate(0, 0, -7),
			Time:     "17:00",
			Location: "Community Hall",
			Score:    score(3, 1),
			Status:   models.MatchStatusCompleted,
			Winner:   winner("Paddle Masters"),
		},
	}

	for i := range matches {
		if err := f.db.Create(&matches[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Created %d matches", len(matches))
	return nil
}
