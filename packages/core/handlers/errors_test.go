package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Services may wrap a sentinel with context; the status mapping must
// still recognize it.
func TestRespondTeamError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrTeamNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading team: %w", services.ErrTeamNotFound), http.StatusNotFound},
		{"wrapped invalid sport", fmt.Errorf("validating: %w", services.ErrInvalidSport), http.StatusBadRequest},
		{"unknown error", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondTeamError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRespondMatchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrMatchNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading match: %w", services.ErrMatchNotFound), http.StatusNotFound},
		{"wrapped invalid date", fmt.Errorf("updating: %w", services.ErrInvalidDate), http.StatusBadRequest},
		{"wrapped invalid winner", fmt.Errorf("updating: %w", services.ErrInvalidWinner), http.StatusBadRequest},
		{"unknown error", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondMatchError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
