package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Connection pool bounds. Waits under load are capped by the
	// connect timeout; pool construction failure is fatal at startup.
	DBMaxConns       int32
	DBConnectTimeout time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Notification retention (maintenance purge, not the request path).
	NotificationRetentionDays int
	NotificationPurgeInterval time.Duration

	// External OAuth provider
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "2s")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "teampulse-backend")
	viper.SetDefault("NOTIFICATION_RETENTION_DAYS", 30)
	viper.SetDefault("NOTIFICATION_PURGE_INTERVAL", "12h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 20
	}

	connectTimeout, err := time.ParseDuration(viper.GetString("DB_CONNECT_TIMEOUT"))
	if err != nil || connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}
	cfg.DBConnectTimeout = connectTimeout

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if !cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.NotificationRetentionDays = viper.GetInt("NOTIFICATION_RETENTION_DAYS")
	if cfg.NotificationRetentionDays <= 0 {
		cfg.NotificationRetentionDays = 30
	}

	purgeInterval, err := time.ParseDuration(viper.GetString("NOTIFICATION_PURGE_INTERVAL"))
	if err != nil || purgeInterval <= 0 {
		purgeInterval = 12 * time.Hour
	}
	cfg.NotificationPurgeInterval = purgeInterval

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
