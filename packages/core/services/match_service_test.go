package services

import (
	"testing"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchService(t *testing.T) *MatchService {
	return NewMatchService(setupTestDB(t))
}

func validMatchRequest() models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Sport: "basketball",
		Team1: "Crescent Ballers",
		Team2: "Downtown Dunkers",
		Date:  "2026-09-12",
	}
}

func TestMatchService_CreateMatch(t *testing.T) {
	t.Run("initializes scheduling defaults", func(t *testing.T) {
		s := newMatchService(t)

		match, err := s.CreateMatch(validMatchRequest())
		require.NoError(t, err)
		assert.Equal(t, models.MatchStatusScheduled, match.Status)
		assert.Equal(t, "TBD", match.Time)
		assert.Equal(t, defaultLocation, match.Location)
		assert.Nil(t, match.Score.Team1)
		assert.Nil(t, match.Score.Team2)
		assert.Nil(t, match.Winner)
		assert.Equal(t, 2026, match.Date.Year())
	})

	t.Run("keeps explicit time and location", func(t *testing.T) {
		s := newMatchService(t)

		req := validMatchRequest()
		req.Time = "18:00"
		req.Location = "Gym B"
		match, err := s.CreateMatch(req)
		require.NoError(t, err)
		assert.Equal(t, "18:00", match.Time)
		assert.Equal(t, "Gym B", match.Location)
	})

	t.Run("rejects unknown sport", func(t *testing.T) {
		s := newMatchService(t)

		req := validMatchRequest()
		req.Sport = "cricket"
		_, err := s.CreateMatch(req)
		assert.ErrorIs(t, err, ErrInvalidSport)
	})

	t.Run("rejects unparseable date", func(t *testing.T) {
		s := newMatchService(t)

		req := validMatchRequest()
		req.Date = "next tuesday"
		_, err := s.CreateMatch(req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("accepts RFC 3339 date", func(t *testing.T) {
		s := newMatchService(t)

		req := validMatchRequest()
		req.Date = "2026-09-12T18:00:00Z"
		_, err := s.CreateMatch(req)
		assert.NoError(t, err)
	})
}

func TestMatchService_UpdateMatch(t *testing.T) {
	s := newMatchService(t)

	match, err := s.CreateMatch(validMatchRequest())
	require.NoError(t, err)

	t.Run("records result and keeps untouched fields", func(t *testing.T) {
		team1Score, team2Score := 52, 47
		status := models.MatchStatusCompleted
		winner := "Crescent Ballers"

		updated, err := s.UpdateMatch(match.ID, models.UpdateMatchRequest{
			Score:  &models.Score{Team1: &team1Score, Team2: &team2Score},
			Status: &status,
			Winner: &winner,
		})
		require.NoError(t, err)

		assert.Equal(t, models.MatchStatusCompleted, updated.Status)
		require.NotNil(t, updated.Winner)
		assert.Equal(t, "Crescent Ballers", *updated.Winner)
		require.NotNil(t, updated.Score.Team1)
		assert.Equal(t, 52, *updated.Score.Team1)
		assert.Equal(t, 47, *updated.Score.Team2)

		// Untouched fields keep their prior values
		assert.Equal(t, "TBD", updated.Time)
		assert.Equal(t, match.Location, updated.Location)
		assert.Equal(t, match.Team1, updated.Team1)
	})

	t.Run("rejects a winner that is not one of the teams", func(t *testing.T) {
		winner := "Some Other Team"
		_, err := s.UpdateMatch(match.ID, models.UpdateMatchRequest{Winner: &winner})
		assert.ErrorIs(t, err, ErrInvalidWinner)
	})

	t.Run("empty winner clears the field", func(t *testing.T) {
		winner := ""
		updated, err := s.UpdateMatch(match.ID, models.UpdateMatchRequest{Winner: &winner})
		require.NoError(t, err)
		assert.Nil(t, updated.Winner)
	})

	t.Run("rejects unparseable date", func(t *testing.T) {
		date := "soon"
		_, err := s.UpdateMatch(match.ID, models.UpdateMatchRequest{Date: &date})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown id", func(t *testing.T) {
		status := models.MatchStatusOngoing
		_, err := s.UpdateMatch(9999, models.UpdateMatchRequest{Status: &status})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestMatchService_GetAllMatches(t *testing.T) {
	s := newMatchService(t)

	first := validMatchRequest()
	first.Date = "2026-09-05"
	_, err := s.CreateMatch(first)
	require.NoError(t, err)

	second := models.CreateMatchRequest{
		Sport: "volleyball",
		Team1: "Net Setters",
		Team2: "Spike Squad",
		Date:  "2026-09-01",
	}
	_, err = s.CreateMatch(second)
	require.NoError(t, err)

	t.Run("ordered by date ascending", func(t *testing.T) {
		matches, err := s.GetAllMatches("")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "volleyball", matches[0].Sport)
		assert.Equal(t, "basketball", matches[1].Sport)
	})

	t.Run("sport filter includes and excludes", func(t *testing.T) {
		matches, err := s.GetAllMatches("basketball")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Crescent Ballers", matches[0].Team1)

		matches, err = s.GetAllMatches("ping-pong")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestMatchService_DeleteMatch(t *testing.T) {
	s := newMatchService(t)

	match, err := s.CreateMatch(validMatchRequest())
	require.NoError(t, err)

	require.NoError(t, s.DeleteMatch(match.ID))
	assert.ErrorIs(t, s.DeleteMatch(match.ID), ErrMatchNotFound)
}
