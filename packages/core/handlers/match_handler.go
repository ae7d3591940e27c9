package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches lists matches
// @Summary List matches
// @Description All matches ordered by date, with an optional ?sport= filter
// @Tags matches
// @Produce json
// @Param sport query string false "Sport filter"
// @Success 200 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /api/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	matches, err := h.matchService.GetAllMatches(c.Query("sport"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch schedules a match
// @Summary Schedule a match
// @Description Create a match in scheduled status with no score (admin only)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sport, team1, team2, and date are required"})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateMatch partially updates a match
// @Summary Update match
// @Description Update any subset of score, status, winner, date, time, location (admin only)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.UpdateMatchRequest true "Fields to update"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid match ID"})
		return
	}

	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be scheduled, ongoing, or completed"})
		return
	}

	match, err := h.matchService.UpdateMatch(id, req)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match
// @Summary Delete match
// @Description Remove a match (admin only)
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid match ID"})
		return
	}

	if err := h.matchService.DeleteMatch(id); err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

func respondMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
	case errors.Is(err, services.ErrInvalidSport):
		c.JSON(http.StatusBadRequest, gin.H{"message": sportsMessage()})
	case errors.Is(err, services.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date must be YYYY-MM-DD or RFC 3339"})
	case errors.Is(err, services.ErrInvalidWinner):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Winner must be one of the match teams"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func sportsMessage() string {
	return fmt.Sprintf("Sport must be one of: %s", strings.Join(models.AllowedSports, ", "))
}
