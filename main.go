// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/conditions"
	"github.com/ariebrainware/health-tracker/config"
	"github.com/ariebrainware/health-tracker/endpoint"
	"github.com/ariebrainware/health-tracker/middleware"
	"github.com/ariebrainware/health-tracker/store"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	// Redis only backs the lookup rate limiter; without it the limiter fails open.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, lookup rate limiting disabled: %v", err)
	}

	recordStore := store.NewRecordStore()
	conditionClient := conditions.NewClient(cfg.ConditionSource, cfg.ConditionCacheTTL)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	// Create a Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.StoreMiddleware(recordStore))
	router.Use(middleware.ConditionsMiddleware(conditionClient))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/patient", endpoint.ListPatients)
	router.POST("/patient", endpoint.CreatePatient)
	router.DELETE("/patient", endpoint.ClearPatients)

	router.GET("/report", endpoint.GetReport)

	lookupLimiter := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.LookupRateLimit,
		Window: cfg.LookupRateWindow,
	})
	router.GET("/condition", endpoint.ListConditions)
	router.GET("/condition/lookup", lookupLimiter, endpoint.LookupCondition)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
