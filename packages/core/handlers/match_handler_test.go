package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchPayload() map[string]interface{} {
	return map[string]interface{}{
		"sport": "basketball",
		"team1": "Crescent Ballers",
		"team2": "Downtown Dunkers",
		"date":  "2026-09-12",
	}
}

func decodeMatch(t *testing.T, w *httptest.ResponseRecorder) models.Match {
	t.Helper()
	var match models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))
	return match
}

func TestCreateMatch(t *testing.T) {
	r, token := setupRouter(t)

	t.Run("requires admin", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/matches", "", matchPayload())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		payload := matchPayload()
		delete(payload, "date")
		w := doJSON(t, r, http.MethodPost, "/api/matches", token, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sport outside allowed set", func(t *testing.T) {
		payload := matchPayload()
		payload["sport"] = "cricket"
		w := doJSON(t, r, http.MethodPost, "/api/matches", token, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created with scheduling defaults", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/matches", token, matchPayload())
		require.Equal(t, http.StatusCreated, w.Code)

		match := decodeMatch(t, w)
		assert.Equal(t, models.MatchStatusScheduled, match.Status)
		assert.Equal(t, "TBD", match.Time)
		assert.Equal(t, "Main Court", match.Location)
		assert.Nil(t, match.Score.Team1)
		assert.Nil(t, match.Score.Team2)
		assert.Nil(t, match.Winner)
	})
}

func TestListMatchesSportFilter(t *testing.T) {
	r, token := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/matches", token, matchPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("matching sport includes the match", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/matches?sport=basketball", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.Match
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		require.Len(t, matches, 1)
		assert.Equal(t, "Crescent Ballers", matches[0].Team1)
	})

	t.Run("other sport excludes the match", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/matches?sport=volleyball", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var matches []models.Match
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		assert.Empty(t, matches)
	})
}

func TestUpdateMatch(t *testing.T) {
	r, token := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/matches", token, matchPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	match := decodeMatch(t, w)
	path := fmt.Sprintf("/api/matches/%d", match.ID)

	t.Run("requires admin", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, "", map[string]string{"status": "ongoing"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("completed with winner persists both, retains the rest", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{
			"status": "completed",
			"winner": "Crescent Ballers",
			"score":  map[string]int{"team1": 52, "team2": 47},
		})
		require.Equal(t, http.StatusOK, w.Code)

		updated := decodeMatch(t, w)
		assert.Equal(t, models.MatchStatusCompleted, updated.Status)
		require.NotNil(t, updated.Winner)
		assert.Equal(t, "Crescent Ballers", *updated.Winner)
		require.NotNil(t, updated.Score.Team1)
		assert.Equal(t, 52, *updated.Score.Team1)

		// Fields omitted from the update keep their prior values
		assert.Equal(t, match.Time, updated.Time)
		assert.Equal(t, match.Location, updated.Location)
	})

	t.Run("arbitrary status strings are rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, token, map[string]string{"status": "abandoned"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("winner outside the match is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, token, map[string]string{"winner": "Net Setters"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/matches/9999", token, map[string]string{"status": "ongoing"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteMatch(t *testing.T) {
	r, token := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/matches", token, matchPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	match := decodeMatch(t, w)

	t.Run("requires admin", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/matches/%d", match.ID), "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("delete removes the match", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/matches/%d", match.ID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/matches", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var matches []models.Match
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		assert.Empty(t, matches)
	})

	t.Run("deleting a nonexistent match returns 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/matches/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
