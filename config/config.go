package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	API        APIConfig

	// Scheduling specifics
	Availability   AvailabilityConfig
	GoogleCalendar GoogleCalendarConfig

	// Subjects seeds the in-process subject directory. Deployments with a
	// real identity store leave this empty and wire their own directory.
	Subjects []SubjectConfig
}

// SubjectConfig seeds one subject into the directory at startup.
type SubjectConfig struct {
	ID        string   `mapstructure:"id"`
	UserIDs   []string `mapstructure:"user_ids"`
	Status    string   `mapstructure:"status"`
	Providers []string `mapstructure:"providers"`
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig controls request authentication and throttling. An empty Key
// disables authentication; RateLimitPerMin <= 0 disables throttling.
type APIConfig struct {
	Key             string
	RateLimitPerMin int
}

// AvailabilityConfig tunes the slot computation pipeline.
type AvailabilityConfig struct {
	FetchTimeout time.Duration // Per provider fetch
	CacheTTL     time.Duration // Busy-interval cache; 0 disables caching
	StepMinutes  int           // Candidate slot step
	Timezone     string        // IANA zone for relative date expressions
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// API auth & rate limiting
	cfg.API.Key = expandEnvVar(viper.GetString("api.key"))
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.API.Key = apiKey
	}
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	// Availability pipeline
	cfg.Availability.FetchTimeout = viper.GetDuration("availability.fetch_timeout")
	cfg.Availability.CacheTTL = viper.GetDuration("availability.cache_ttl")
	cfg.Availability.StepMinutes = viper.GetInt("availability.step_minutes")
	cfg.Availability.Timezone = viper.GetString("availability.timezone")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Subject seed
	if viper.IsSet("subjects") {
		if err := viper.UnmarshalKey("subjects", &cfg.Subjects); err != nil {
			return nil, fmt.Errorf("error parsing subjects: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("api.rate_limit_per_min", 60)
	viper.SetDefault("availability.fetch_timeout", "10s")
	viper.SetDefault("availability.cache_ttl", "5m")
	viper.SetDefault("availability.step_minutes", 30)
	viper.SetDefault("availability.timezone", "UTC")
}

// expandEnvVar expands a value in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}
	return value
}
