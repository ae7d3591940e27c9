package cron

import (
	"log"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron          *cron.Cron
	digestService *services.DigestService
}

func NewScheduler(digestService *services.DigestService) *Scheduler {
	// Seconds precision with verbose logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:          c,
		digestService: digestService,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Pending-registrations digest every morning at 08:00
	_, err := s.cron.AddFunc("0 0 8 * * *", s.runDigest)
	if err != nil {
		log.Printf("Error scheduling digest job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runDigest() {
	log.Println("Running pending teams digest job...")

	pendingCount, err := s.digestService.GetPendingTeamsCount()
	if err != nil {
		log.Printf("Error checking pending teams count: %v", err)
		return
	}

	if pendingCount == 0 {
		log.Println("No pending teams to report")
		return
	}

	if err := s.digestService.SendPendingTeamsDigest(); err != nil {
		log.Printf("Error sending pending teams digest: %v", err)
		return
	}

	log.Println("Pending teams digest job completed successfully")
}
