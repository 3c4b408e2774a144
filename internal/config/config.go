package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, resolved once at startup from
// environment variables and an optional YAML file.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// DataForSEO
	DataForSEOUsername string
	DataForSEOPassword string
	DataForSEOBaseURL  string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string // Optional, for OpenAI-compatible gateways
	OpenAIModel   string

	// Timeout for each outbound provider call, 0 disables it
	UpstreamTimeout time.Duration

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Generador de Títulos SEO"
}

// ErrMissingCredentials is returned by Validate when provider credentials are absent.
var ErrMissingCredentials = errors.New("missing provider credentials")

// Load reads configuration from environment variables with sensible defaults.
// If CONFIG_FILE is set, that YAML file is read first and environment
// variables still take precedence over it.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return &Config{
		Env:                v.GetString("env"),
		ServerAddr:         v.GetString("server_addr"),
		DataForSEOUsername: v.GetString("dataforseo_username"),
		DataForSEOPassword: v.GetString("dataforseo_password"),
		DataForSEOBaseURL:  v.GetString("dataforseo_base_url"),
		OpenAIAPIKey:       v.GetString("openai_api_key"),
		OpenAIBaseURL:      v.GetString("openai_base_url"),
		OpenAIModel:        v.GetString("openai_model"),
		UpstreamTimeout:    v.GetDuration("upstream_timeout"),
		SiteTitle:          v.GetString("site_title"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("config_file", "")
	v.SetDefault("env", "development")
	v.SetDefault("server_addr", "127.0.0.1:5000")
	v.SetDefault("dataforseo_username", "")
	v.SetDefault("dataforseo_password", "")
	v.SetDefault("dataforseo_base_url", "https://api.dataforseo.com")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("openai_model", "gpt-3.5-turbo")
	v.SetDefault("upstream_timeout", "0s")
	v.SetDefault("site_title", "Generador de Títulos SEO")
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate reports which provider credentials are missing. The server still
// starts without them; generation requests fail until they are set.
func (c *Config) Validate() error {
	var missing []string
	if c.DataForSEOUsername == "" {
		missing = append(missing, "DATAFORSEO_USERNAME")
	}
	if c.DataForSEOPassword == "" {
		missing = append(missing, "DATAFORSEO_PASSWORD")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}
	return nil
}
