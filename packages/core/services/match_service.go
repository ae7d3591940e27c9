package services

import (
	"errors"
	"os"
	"time"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"gorm.io/gorm"
)

const defaultLocation = "Main Court"

type MatchService struct {
	db              *gorm.DB
	defaultLocation string
}

func NewMatchService(db *gorm.DB) *MatchService {
	location := os.Getenv("DEFAULT_LOCATION")
	if location == "" {
		location = defaultLocation
	}

	return &MatchService{
		db:              db,
		defaultLocation: location,
	}
}

// GetAllMatches returns matches ordered by date, optionally narrowed to one sport.
func (s *MatchService) GetAllMatches(sport string) ([]models.Match, error) {
	matches := []models.Match{}

	query := s.db.Order("date ASC")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	if err := query.Find(&matches).Error; err != nil {
		return nil, err
	}

	return matches, nil
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match

	result := s.db.First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}

// CreateMatch schedules a match with no score and no winner yet.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	if !models.IsAllowedSport(req.Sport) {
		return nil, ErrInvalidSport
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	matchTime := req.Time
	if matchTime == "" {
		matchTime = "TBD"
	}

	location := req.Location
	if location == "" {
		location = s.defaultLocation
	}

	match := &models.Match{
		Sport:    req.Sport,
		Team1:    req.Team1,
		Team2:    req.Team2,
		Date:     date,
		Time:     matchTime,
		Location: location,
		Score:    models.Score{},
		Status:   models.MatchStatusScheduled,
		Winner:   nil,
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

// UpdateMatch applies only the fields present in the request. A winner is
// accepted only when it names one of the match teams; an empty string clears it.
func (s *MatchService) UpdateMatch(id uint, req models.UpdateMatchRequest) (*models.Match, error) {
	match, err := s.GetMatchByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Score != nil {
		updates["score"] = *req.Score
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Winner != nil {
		if *req.Winner == "" {
			updates["winner"] = nil
		} else if *req.Winner != match.Team1 && *req.Winner != match.Team2 {
			return nil, ErrInvalidWinner
		} else {
			updates["winner"] = *req.Winner
		}
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["date"] = date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) > 0 {
		if err := s.db.Model(match).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetMatchByID(id)
}

func (s *MatchService) DeleteMatch(id uint) error {
	result := s.db.Delete(&models.Match{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}
