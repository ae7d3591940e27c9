package services

import (
	"log"
	"os"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"gorm.io/gorm"
)

// DigestService mails the admin a summary of registrations still waiting
// for approval. It never changes team status: approval stays a manual action.
type DigestService struct {
	db    *gorm.DB
	email EmailService
}

func NewDigestService(db *gorm.DB, email EmailService) *DigestService {
	return &DigestService{
		db:    db,
		email: email,
	}
}

// GetPendingTeamsCount returns the number of teams awaiting approval
func (s *DigestService) GetPendingTeamsCount() (int64, error) {
	var count int64
	result := s.db.Model(&models.Team{}).Where("status = ?", models.TeamStatusPending).Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// SendPendingTeamsDigest sends the digest email. It is a no-op when there is
// nothing pending or no admin address is configured.
func (s *DigestService) SendPendingTeamsDigest() error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("ADMIN_EMAIL not configured, skipping pending teams digest")
		return nil
	}

	var pending []models.Team
	result := s.db.Where("status = ?", models.TeamStatusPending).
		Order("created_at ASC").
		Find(&pending)

	if result.Error != nil {
		log.Printf("Error loading pending teams: %v", result.Error)
		return result.Error
	}

	if len(pending) == 0 {
		log.Println("No pending teams, skipping digest")
		return nil
	}

	log.Printf("Sending pending teams digest (%d team(s)) to %s", len(pending), adminEmail)

	return s.email.SendPendingTeamsDigest(adminEmail, pending)
}
