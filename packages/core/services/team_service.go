package services

import (
	"errors"
	"log"
	"os"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db    *gorm.DB
	email EmailService
}

func NewTeamService(db *gorm.DB, email EmailService) *TeamService {
	return &TeamService{
		db:    db,
		email: email,
	}
}

// GetAllTeams returns teams in the given status, newest first.
// An empty sport keeps all sports.
func (s *TeamService) GetAllTeams(sport, status string) ([]models.Team, error) {
	teams := []models.Team{}

	query := s.db.Where("status = ?", status)
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	if err := query.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

// CreateTeam registers a team. Admin submissions go live immediately,
// self-service registrations wait for approval.
func (s *TeamService) CreateTeam(req models.CreateTeamRequest, asAdmin bool) (*models.Team, error) {
	if !models.IsAllowedSport(req.Sport) {
		return nil, ErrInvalidSport
	}

	// Friendly pre-check; the unique (name, sport) index is the real guard
	var existing models.Team
	if err := s.db.Where("name = ? AND sport = ?", req.Name, req.Sport).First(&existing).Error; err == nil {
		return nil, ErrTeamExists
	}

	status := models.TeamStatusPending
	if asAdmin {
		status = models.TeamStatusConfirmed
	}

	team := &models.Team{
		Name:    req.Name,
		Sport:   req.Sport,
		Captain: req.Captain,
		Contact: req.Contact,
		Players: models.Players(req.Players),
		Status:  status,
	}

	if err := s.db.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeamExists
		}
		return nil, err
	}

	if status == models.TeamStatusPending {
		s.notifyRegistration(team)
	}

	return team, nil
}

// ApproveTeam moves a pending team into public listings.
func (s *TeamService) ApproveTeam(id uint) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(team).Update("status", models.TeamStatusConfirmed).Error; err != nil {
		return nil, err
	}

	return s.GetTeamByID(id)
}

// UpdateTeam applies only the fields present in the request.
func (s *TeamService) UpdateTeam(id uint, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	if req.Sport != nil && !models.IsAllowedSport(*req.Sport) {
		return nil, ErrInvalidSport
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Sport != nil {
		updates["sport"] = *req.Sport
	}
	if req.Captain != nil {
		updates["captain"] = *req.Captain
	}
	if req.Contact != nil {
		updates["contact"] = *req.Contact
	}
	if req.Players != nil {
		updates["players"] = models.Players(*req.Players)
	}

	if len(updates) > 0 {
		if err := s.db.Model(team).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrTeamExists
			}
			return nil, err
		}
	}

	return s.GetTeamByID(id)
}

func (s *TeamService) DeleteTeam(id uint) error {
	result := s.db.Delete(&models.Team{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// notifyRegistration tells the admin about a new self-service registration.
// Best effort: a delivery failure never fails the request.
func (s *TeamService) notifyRegistration(team *models.Team) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" || s.email == nil {
		return
	}

	if err := s.email.SendTeamRegisteredEmail(adminEmail, team); err != nil {
		log.Printf("Failed to send registration notification for team %d: %v", team.ID, err)
	}
}
