// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ariebrainware/voicenotes-api/config"
	"github.com/ariebrainware/voicenotes-api/endpoint"
	"github.com/ariebrainware/voicenotes-api/middleware"
	"github.com/ariebrainware/voicenotes-api/model"
	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	db.AutoMigrate(&model.Patient{}, &model.Note{}, &model.Summary{}, &model.SecurityLog{})

	// Security events are persisted once the DB is up
	util.SetSecurityLoggerDB(db)

	// Redis backs the rate limiter; a failed connection only disables limiting
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	// Create a Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	// Liveness check, no auth and no rate limiting
	router.GET("/health", endpoint.Health)

	api := router.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg.APIKey))
	api.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow(),
		Client: rdb,
	}))
	endpoint.RegisterRoutes(api)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
