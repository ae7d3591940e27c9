package auth

import (
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth/handlers"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth/middleware"

	"github.com/gin-gonic/gin"
)

type Module struct {
	Handler *handlers.AuthHandler
}

func NewModule() *Module {
	return &Module{
		Handler: handlers.NewAuthHandler(),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", m.Handler.Login)
		auth.POST("/verify", m.Handler.Verify)
	}
}

func JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware()
}

func OptionalJWTMiddleware() gin.HandlerFunc {
	return middleware.OptionalJWTMiddleware()
}

func IsAdmin(c *gin.Context) bool {
	return middleware.IsAdmin(c)
}
