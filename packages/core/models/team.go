package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	TeamStatusPending   = "pending"
	TeamStatusConfirmed = "confirmed"
)

// Players is the team roster, stored as a jsonb column
type Players []string

// Implements the driver.Valuer interface for GORM
func (p Players) Value() (driver.Value, error) {
	if len(p) == 0 {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}

// Implements the sql.Scanner interface for GORM
func (p *Players) Scan(value interface{}) error {
	if value == nil {
		*p = Players{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported source type for Players")
	}
}

type Team struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_teams_name_sport" json:"name"`
	Sport     string    `gorm:"size:50;not null;uniqueIndex:idx_teams_name_sport" json:"sport"`
	Captain   string    `gorm:"size:255;not null" json:"captain"`
	Contact   string    `gorm:"size:255" json:"contact"`
	Players   Players   `gorm:"type:jsonb" json:"players"`
	Status    string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Team) TableName() string {
	return "teams"
}

type CreateTeamRequest struct {
	Name    string   `json:"name" binding:"required"`
	Sport   string   `json:"sport" binding:"required"`
	Captain string   `json:"captain" binding:"required"`
	Contact string   `json:"contact,omitempty"`
	Players []string `json:"players,omitempty"`
}

type UpdateTeamRequest struct {
	Name    *string   `json:"name,omitempty"`
	Sport   *string   `json:"sport,omitempty"`
	Captain *string   `json:"captain,omitempty"`
	Contact *string   `json:"contact,omitempty"`
	Players *[]string `json:"players,omitempty"`
}
