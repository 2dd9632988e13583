package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset.
const (
	defaultAppPort         = 8080
	defaultConditionSource = "data/conditions.json"
	defaultConditionTTL    = 5 * time.Minute
)

// Config holds the application's configuration values.
type Config struct {
	AppName           string `json:"appname"`
	AppEnv            string `json:"appenv"`
	AppPort           uint16 `json:"appport"`
	GinMode           string `json:"ginmode"`
	ConditionSource   string `json:"conditionsource"`
	ConditionCacheTTL time.Duration
	LookupRateLimit   int
	LookupRateWindow  time.Duration
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// In the test environment no .env file is read.
func LoadConfig() *Config {
	once.Do(func() {
		if os.Getenv("APPENV") != "test" {
			if err := godotenv.Load(); err != nil {
				log.Printf("No .env file loaded: %v", err)
			}
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = defaultAppPort
		}

		source := os.Getenv("CONDITION_SOURCE")
		if source == "" {
			source = defaultConditionSource
		}

		ttl := defaultConditionTTL
		if ttlStr := os.Getenv("CONDITION_CACHE_TTL"); ttlStr != "" {
			if v, err := time.ParseDuration(ttlStr); err == nil {
				ttl = v
			}
		}

		rateLimit, _ := strconv.Atoi(os.Getenv("LOOKUP_RATE_LIMIT"))
		var rateWindow time.Duration
		if windowStr := os.Getenv("LOOKUP_RATE_WINDOW"); windowStr != "" {
			if v, err := time.ParseDuration(windowStr); err == nil {
				rateWindow = v
			}
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:           os.Getenv("APPNAME"),
			AppEnv:            os.Getenv("APPENV"),
			AppPort:           uint16(appPort),
			GinMode:           os.Getenv("GINMODE"),
			ConditionSource:   source,
			ConditionCacheTTL: ttl,
			LookupRateLimit:   rateLimit,
			LookupRateWindow:  rateWindow,
		}
	})
	return config
}

// ResetConfigForTesting clears the singleton so tests can reload with
// different environment variables. This should only be used in tests.
func ResetConfigForTesting() {
	config = nil
	once = sync.Once{}
}
