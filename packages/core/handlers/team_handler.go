package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetTeams lists teams
// @Summary List teams
// @Description Confirmed teams by default. An authenticated admin may request ?status=pending instead. Optional ?sport= filter.
// @Tags teams
// @Produce json
// @Param sport query string false "Sport filter"
// @Param status query string false "pending (admin only)"
// @Success 200 {array} models.Team
// @Failure 500 {object} map[string]string
// @Router /api/teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	status := models.TeamStatusConfirmed
	if auth.IsAdmin(c) && c.Query("status") == models.TeamStatusPending {
		status = models.TeamStatusPending
	}

	teams, err := h.teamService.GetAllTeams(c.Query("sport"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam gets a team by ID
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	team, err := h.teamService.GetTeamByID(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam registers a team
// @Summary Register a team
// @Description Self-service registrations are created pending; submissions with a valid admin token are confirmed immediately.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, sport, and captain are required"})
		return
	}

	team, err := h.teamService.CreateTeam(req, auth.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSport):
			c.JSON(http.StatusBadRequest, gin.H{"message": sportsMessage()})
		case errors.Is(err, services.ErrTeamExists):
			c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("A %s team named %q already exists", req.Sport, req.Name)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ApproveTeam confirms a pending team
// @Summary Approve team
// @Description Move a pending team into public listings (admin only)
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/teams/{id}/approve [patch]
func (h *TeamHandler) ApproveTeam(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	team, err := h.teamService.ApproveTeam(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam partially updates a team
// @Summary Update team
// @Description Update any subset of name, sport, captain, players, contact (admin only)
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body models.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	team, err := h.teamService.UpdateTeam(id, req)
	if err != nil {
		if errors.Is(err, services.ErrTeamExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "A team with that name and sport already exists"})
			return
		}
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team
// @Summary Delete team
// @Description Irreversibly remove a team (admin only)
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case errors.Is(err, services.ErrInvalidSport):
		c.JSON(http.StatusBadRequest, gin.H{"message": sportsMessage()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
