package main

import (
	"log"
	"net/http"
	"os"

	"github.com/OmarTheProgrammerr/MasjidOmar/config"
	_ "github.com/OmarTheProgrammerr/MasjidOmar/docs" // Swagger docs
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth"
	"github.com/OmarTheProgrammerr/MasjidOmar/packages/core"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Masjid Omar Tournament API
// @version         1.0
// @description     Community sports tournament API: public team and match listings, team registration with admin approval, and JWT-gated administration.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer config.CloseDatabase(db)

	r := gin.Default()
	r.Use(cors.Default())

	authModule := auth.NewModule()
	authModule.SetupRoutes(r)

	coreModule := core.NewModule(db)
	coreModule.SetupRoutes(r)

	if err := coreModule.StartScheduler(); err != nil {
		log.Printf("Scheduler failed to start: %v", err)
	}
	defer coreModule.StopScheduler()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// @Summary Health Check
// @Description Check if the server is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
