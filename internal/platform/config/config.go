package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backend names accepted in STORE_BACKEND.
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Persistence backend selection
	StoreBackend string
	RedisAddr    string
	DatabaseURL  string

	// Access gate. AppPasswordHash (bcrypt) takes precedence over the
	// plaintext AppPassword when both are set.
	AppPassword     string
	AppPasswordHash string

	// Session token
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", StoreBackendMemory)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("APP_PASSWORD", "")
	viper.SetDefault("APP_PASSWORD_HASH", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "zeta-books")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StoreBackend = viper.GetString("STORE_BACKEND")
	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendPostgres:
	default:
		log.Printf("Warning: Unknown STORE_BACKEND (%q). Defaulting to %s.\n", cfg.StoreBackend, StoreBackendMemory)
		cfg.StoreBackend = StoreBackendMemory
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.StoreBackend == StoreBackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_BACKEND is postgres but PGSQL_URL is not set.")
	}

	cfg.AppPassword = viper.GetString("APP_PASSWORD")
	cfg.AppPasswordHash = viper.GetString("APP_PASSWORD_HASH")
	if cfg.AppPassword == "" && cfg.AppPasswordHash == "" {
		log.Println("Warning: Neither APP_PASSWORD nor APP_PASSWORD_HASH is set. All logins will be rejected.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	return cfg, nil
}
