package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads application configuration from the environment,
// optionally seeded from a local env file in development
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		var err error
		if configPath == "" {
			err = godotenv.Load()
		} else {
			err = godotenv.Load(configPath)
		}
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "activity-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9994)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Places config
	configs.Places.File = GetEnv("PLACES_FILE", "config/places.json")

	// Detection config — every pipeline tunable is a named parameter here
	configs.Detection.StationaryMaxMps = GetEnvAsFloat("DETECTION_STATIONARY_MAX_MPS", 0.3)
	configs.Detection.WalkingMaxMps = GetEnvAsFloat("DETECTION_WALKING_MAX_MPS", 2.0)
	configs.Detection.SegmentGapMinutes = GetEnvAsInt("DETECTION_SEGMENT_GAP_MINUTES", 10)

	configs.Detection.Golf.GapToleranceMinutes = GetEnvAsInt("GOLF_GAP_TOLERANCE_MINUTES", 10)
	configs.Detection.Golf.MinDurationMinutes = GetEnvAsInt("GOLF_MIN_DURATION_MINUTES", 30)
	configs.Detection.Golf.ExpectedMinMinutes = GetEnvAsInt("GOLF_EXPECTED_MIN_MINUTES", 90)
	configs.Detection.Golf.ExpectedMaxMinutes = GetEnvAsInt("GOLF_EXPECTED_MAX_MINUTES", 180)
	configs.Detection.Golf.EarliestStartHour = GetEnvAsInt("GOLF_EARLIEST_START_HOUR", -1)
	configs.Detection.Golf.LatestStartHour = GetEnvAsInt("GOLF_LATEST_START_HOUR", -1)

	configs.Detection.DogWalk.GapToleranceMinutes = GetEnvAsInt("DOGWALK_GAP_TOLERANCE_MINUTES", 10)
	configs.Detection.DogWalk.MinDurationMinutes = GetEnvAsInt("DOGWALK_MIN_DURATION_MINUTES", 5)
	configs.Detection.DogWalk.ExpectedMinMinutes = GetEnvAsInt("DOGWALK_EXPECTED_MIN_MINUTES", 15)
	configs.Detection.DogWalk.ExpectedMaxMinutes = GetEnvAsInt("DOGWALK_EXPECTED_MAX_MINUTES", 90)
	configs.Detection.DogWalk.EarliestStartHour = -1
	configs.Detection.DogWalk.LatestStartHour = -1

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid int value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
