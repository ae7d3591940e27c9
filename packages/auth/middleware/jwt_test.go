package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.TokenSecretKey = "middleware-test-secret"
}

func newProtectedRouter(optional bool) *gin.Engine {
	r := gin.New()

	mw := JWTMiddleware()
	if optional {
		mw = OptionalJWTMiddleware()
	}

	r.GET("/probe", mw, func(c *gin.Context) {
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c), "username": username})
	})
	return r
}

func TestJWTMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateAdminToken("omar")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + adminToken, http.StatusOK},
	}

	r := newProtectedRouter(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"admin":true`)
				assert.Contains(t, w.Body.String(), `"username":"omar"`)
			}
		})
	}
}

func TestOptionalJWTMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateAdminToken("omar")
	require.NoError(t, err)

	r := newProtectedRouter(true)

	t.Run("anonymous without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":false`)
	})

	t.Run("anonymous on invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":false`)
	})

	t.Run("admin on valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":true`)
	})
}
