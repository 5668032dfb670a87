package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	Listing   ListingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
	// FixedCode, when non-empty, replaces the random code on every issue.
	// Meant for automated-test deployments only.
	FixedCode string
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type ListingConfig struct {
	ExpiryDays   int
	MaxPageSize  int
	SweepMinutes int // 0 disables the expiry sweeper
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_FIXED_CODE", "")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("LISTING_EXPIRY_DAYS", 90)
	viper.SetDefault("LISTING_MAX_PAGE_SIZE", 50)
	viper.SetDefault("LISTING_SWEEP_MINUTES", 60)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
			FixedCode:     viper.GetString("OTP_FIXED_CODE"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			Burst:     viper.GetInt("RATE_LIMIT_BURST"),
		},
		Listing: ListingConfig{
			ExpiryDays:   viper.GetInt("LISTING_EXPIRY_DAYS"),
			MaxPageSize:  viper.GetInt("LISTING_MAX_PAGE_SIZE"),
			SweepMinutes: viper.GetInt("LISTING_SWEEP_MINUTES"),
		},
	}

	return config, nil
}
