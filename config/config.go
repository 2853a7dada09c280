package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Bookla provider configuration.
	BooklaBaseURL     string `mapstructure:"BOOKLA_BASE_URL"`
	BooklaCompanyID   string `mapstructure:"BOOKLA_COMPANY_ID"`
	BooklaAPIKey      string `mapstructure:"BOOKLA_API_KEY"`
	BooklaAdminAPIKey string `mapstructure:"BOOKLA_API_KEY_ADMIN"`

	// Optional HMAC secret for verifying inbound Outseta tokens.
	// When empty, tokens are decoded without signature verification.
	IdentityJWTSecret string `mapstructure:"IDENTITY_JWT_SECRET"`

	// Origins admitted by the CORS gate.
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BOOKLA_BASE_URL", "https://us.bookla.com/api/v1")
	viper.SetDefault("BOOKLA_COMPANY_ID", "")
	viper.SetDefault("BOOKLA_API_KEY", "")
	viper.SetDefault("BOOKLA_API_KEY_ADMIN", "")
	viper.SetDefault("IDENTITY_JWT_SECRET", "")
	viper.SetDefault("ALLOWED_ORIGINS", []string{
		"https://www.texasedgesports.com",
		"https://texasedgesports.com",
		"https://framerusercontent.com",
		"https://*.framer.website",
		"https://*.framer.app",
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Missing Bookla values surface per-request as configuration errors;
	// warn once at startup so the gap is visible immediately.
	if AppConfig.BooklaCompanyID == "" || AppConfig.BooklaAPIKey == "" {
		log.Println("Warning: BOOKLA_COMPANY_ID/BOOKLA_API_KEY not set, Bookla endpoints will fail")
	}
	if AppConfig.BooklaAdminAPIKey == "" {
		log.Println("BOOKLA_API_KEY_ADMIN not set, label enrichment disabled")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
