package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// ConfigurationError reports a configuration that cannot start the service
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
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
	configs.App.Name = GetEnv("APP_NAME", "route-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9994)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.CalculateRateLimit = GetEnvAsInt("CALCULATE_RATE_LIMIT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
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
	configs.NATS.URL = GetEnv("NATS_URL", "nats://127.0.0.1:4222")

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQD_ADDRESS", "127.0.0.1:4150")
	configs.NSQ.LookupdAddresses = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESSES", nil)
	configs.NSQ.Channel = GetEnv("NSQ_CHANNEL", "route-worker")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Routing backend config
	configs.Routing.Backend = models.BackendKind(strings.ToLower(GetEnv("ROUTING_BACKEND", string(models.BackendLocal))))
	configs.Routing.OSRMBaseURL = GetEnv("OSRM_BASE_URL", "http://localhost:5000")
	configs.Routing.ORSBaseURL = GetEnv("ORS_BASE_URL", "https://api.openrouteservice.org")
	configs.Routing.ORSAPIKey = GetEnv("ORS_API_KEY", "")
	configs.Routing.TimeoutSeconds = GetEnvAsInt("ROUTING_TIMEOUT_SECONDS", 30)
	configs.Routing.DefaultProfile = GetEnv("ROUTING_DEFAULT_PROFILE", models.DefaultProfile)
	configs.Routing.BreakerFailures = GetEnvAsInt("ROUTING_BREAKER_FAILURES", 5)
	configs.Routing.BreakerCooldown = GetEnvAsInt("ROUTING_BREAKER_COOLDOWN_SECONDS", 30)

	// Segment cache config
	configs.Cache.Enabled = GetEnvAsBool("CACHE_ENABLED", true)
	configs.Cache.Driver = GetEnv("CACHE_DRIVER", "redis")
	configs.Cache.TTLHours = GetEnvAsInt("CACHE_TTL_HOURS", 24)

	// Background calculation config
	configs.Jobs.AsyncCalculation = GetEnvAsBool("ASYNC_CALCULATION", true)
	configs.Jobs.Transport = GetEnv("JOB_TRANSPORT", "nats")
	configs.Jobs.Workers = GetEnvAsInt("JOB_WORKERS", 4)
	configs.Jobs.MaxAttempts = GetEnvAsInt("JOB_MAX_ATTEMPTS", 3)
	configs.Jobs.RetryDelay = GetEnvAsInt("JOB_RETRY_DELAY_SECONDS", 10)
	configs.Jobs.LockTTL = GetEnvAsInt("JOB_LOCK_TTL_SECONDS", 300)

	// API keys
	configs.APIKeys.Internal = GetEnv("INTERNAL_API_KEY", "")

	return configs
}

// Validate rejects configurations the service cannot run with
func Validate(configs *models.Config) error {
	switch configs.Routing.Backend {
	case models.BackendLocal:
		if configs.Routing.OSRMBaseURL == "" {
			return &ConfigurationError{Field: "OSRM_BASE_URL", Reason: "is required for the local backend"}
		}
	case models.BackendExternal:
		if configs.Routing.ORSAPIKey == "" {
			return &ConfigurationError{Field: "ORS_API_KEY", Reason: "is required for the external backend"}
		}
	default:
		return &ConfigurationError{Field: "ROUTING_BACKEND", Reason: fmt.Sprintf("has unknown value %q", configs.Routing.Backend)}
	}

	if configs.Routing.TimeoutSeconds <= 0 {
		return &ConfigurationError{Field: "ROUTING_TIMEOUT_SECONDS", Reason: "must be positive"}
	}
	if configs.Cache.TTLHours <= 0 {
		return &ConfigurationError{Field: "CACHE_TTL_HOURS", Reason: "must be positive"}
	}
	if configs.Jobs.Transport != "nats" && configs.Jobs.Transport != "nsq" {
		return &ConfigurationError{Field: "JOB_TRANSPORT", Reason: fmt.Sprintf("has unknown value %q", configs.Jobs.Transport)}
	}
	if configs.Jobs.MaxAttempts < 1 {
		return &ConfigurationError{Field: "JOB_MAX_ATTEMPTS", Reason: "must be at least 1"}
	}

	return nil
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
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
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

// GetEnvAsSlice splits a comma separated variable, dropping empty items
func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
