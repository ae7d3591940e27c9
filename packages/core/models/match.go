package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	MatchStatusScheduled = "scheduled"
	MatchStatusOngoing   = "ongoing"
	MatchStatusCompleted = "completed"
)

// Score holds both team scores, null until recorded. Stored as a jsonb column
type Score struct {
	Team1 *int `json:"team1"`
	Team2 *int `json:"team2"`
}

// Implements the driver.Valuer interface for GORM
func (s Score) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Implements the sql.Scanner interface for GORM
func (s *Score) Scan(value interface{}) error {
	if value == nil {
		*s = Score{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported source type for Score")
	}
}

type Match struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Sport     string    `gorm:"size:50;not null;index" json:"sport"`
	Team1     string    `gorm:"size:255;not null" json:"team1"`
	Team2     string    `gorm:"size:255;not null" json:"team2"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Time      string    `gorm:"size:50;default:TBD" json:"time"`
	Location  string    `gorm:"size:255" json:"location"`
	Score     Score     `gorm:"type:jsonb" json:"score"`
	Status    string    `gorm:"size:20;not null;default:scheduled" json:"status"`
	Winner    *string   `gorm:"size:255" json:"winner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Match) TableName() string {
	return "matches"
}

type CreateMatchRequest struct {
	Sport    string `json:"sport" binding:"required"`
	Team1    string `json:"team1" binding:"required"`
	Team2    string `json:"team2" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

type UpdateMatchRequest struct {
	Score    *Score  `json:"score,omitempty"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=scheduled ongoing completed"`
	Winner   *string `json:"winner,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Location *string `json:"location,omitempty"`
}
