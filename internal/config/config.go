package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"technitium_sync/internal/technitium"
)

// Config holds all configuration
type Config struct {
	// API is the connection profile from the environment; it is the
	// fallback when no named profile is selected.
	API APIConfig
	// HTTPAddr is the facade listen address.
	HTTPAddr string
	// FacadeToken guards the facade's reconcile endpoint.
	FacadeToken string
	LogLevel    string
}

// APIConfig holds the Technitium API connection settings
type APIConfig struct {
	URL           string
	Port          int
	Token         string
	ValidateCerts bool
	TimeoutSec    int
}

// Profile converts the connection settings into a client profile.
func (a APIConfig) Profile() technitium.Profile {
	return technitium.Profile{
		BaseURL:       a.URL,
		Port:          a.Port,
		Token:         a.Token,
		ValidateCerts: a.ValidateCerts,
		Timeout:       time.Duration(a.TimeoutSec) * time.Second,
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			URL:           getEnv("TECHNITIUM_API_URL", ""),
			Port:          getEnvInt("TECHNITIUM_API_PORT", 5380),
			Token:         getEnv("TECHNITIUM_API_TOKEN", ""),
			ValidateCerts: getEnv("TECHNITIUM_VALIDATE_CERTS", "1") == "1",
			TimeoutSec:    getEnvInt("TECHNITIUM_TIMEOUT_SEC", 10),
		},
		HTTPAddr:    getEnv("SYNCD_HTTP_ADDR", ":8080"),
		FacadeToken: getEnv("SYNCD_TOKEN", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// LoadProfile reads one named connection profile from an INI file.
// Each section is a profile:
//
//	[lab]
//	api_url = https://dns.lab.example.com
//	api_port = 5380
//	api_token = ...
//	validate_certs = false
func LoadProfile(path, name string) (technitium.Profile, error) {
	file, err := ini.Load(path)
	if err != nil {
		return technitium.Profile{}, fmt.Errorf("failed to load profiles file: %w", err)
	}

	section, err := file.GetSection(name)
	if err != nil {
		return technitium.Profile{}, fmt.Errorf("profile %q not found in %s", name, path)
	}

	apiURL := section.Key("api_url").String()
	if apiURL == "" {
		return technitium.Profile{}, fmt.Errorf("profile %q has no api_url", name)
	}

	return technitium.Profile{
		BaseURL:       apiURL,
		Port:          section.Key("api_port").MustInt(5380),
		Token:         section.Key("api_token").String(),
		ValidateCerts: section.Key("validate_certs").MustBool(true),
		Timeout:       time.Duration(section.Key("timeout_sec").MustInt(10)) * time.Second,
	}, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
