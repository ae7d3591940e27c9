package core

import (
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/cron"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/handlers"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	TeamHandler   *handlers.TeamHandler
	TeamService   *services.TeamService
	MatchHandler  *handlers.MatchHandler
	MatchService  *services.MatchService
	EmailService  services.EmailService
	DigestService *services.DigestService
	Scheduler     *cron.Scheduler
	db            *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	emailService := services.NewEmailService()

	teamService := services.NewTeamService(db, emailService)
	teamHandler := handlers.NewTeamHandler(teamService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	digestService := services.NewDigestService(db, emailService)
	scheduler := cron.NewScheduler(digestService)

	return &Module{
		TeamHandler:   teamHandler,
		TeamService:   teamService,
		MatchHandler:  matchHandler,
		MatchService:  matchService,
		EmailService:  emailService,
		DigestService: digestService,
		Scheduler:     scheduler,
		db:            db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	teams := r.Group("/api/teams")
	{
		teams.GET("", auth.OptionalJWTMiddleware(), m.TeamHandler.GetTeams)
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.POST("", auth.OptionalJWTMiddleware(), m.TeamHandler.CreateTeam)
		teams.PATCH("/:id/approve", auth.JWTMiddleware(), m.TeamHandler.ApproveTeam)
		teams.PUT("/:id", auth.JWTMiddleware(), m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", auth.JWTMiddleware(), m.TeamHandler.DeleteTeam)
	}

	matches := r.Group("/api/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.POST("", auth.JWTMiddleware(), m.MatchHandler.CreateMatch)
		matches.PUT("/:id", auth.JWTMiddleware(), m.MatchHandler.UpdateMatch)
		matches.DELETE("/:id", auth.JWTMiddleware(), m.MatchHandler.DeleteMatch)
	}
}

// StartScheduler starts the cron scheduler for the pending teams digest
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
