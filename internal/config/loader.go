package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// AttioConfig holds CRM API connection and caching settings.
type AttioConfig struct {
	BaseURL   string
	APIKey    string
	CacheSize int
}

// SearchConfig holds free-text parser settings.
type SearchConfig struct {
	LowercaseTokens bool
}

// Config is the full service configuration.
type Config struct {
	Server ServerConfig
	Attio  AttioConfig
	Search SearchConfig
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Attio: AttioConfig{
			BaseURL:   "https://api.attio.com",
			CacheSize: 1024,
		},
		Search: SearchConfig{},
	}
}

// Load reads config.yaml from configPath with environment overrides
// (CRMQL_ prefix, e.g. CRMQL_ATTIO_API_KEY).
func Load(configPath string) (Config, error) {
	// Start with default
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()        // allow environment overrides
	v.SetEnvPrefix("CRMQL") // map env vars like CRMQL_SERVER_ADDR

	// Optional: Map nested keys to flat env vars
	v.BindEnv("server.addr")
	v.BindEnv("server.allowed_origins")
	v.BindEnv("attio.base_url")
	v.BindEnv("attio.api_key")
	v.BindEnv("attio.cache_size")
	v.BindEnv("search.lowercase_tokens")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	// Override defaults if values exist
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}
	if v.IsSet("attio.base_url") {
		cfg.Attio.BaseURL = v.GetString("attio.base_url")
	}
	if v.IsSet("attio.api_key") {
		cfg.Attio.APIKey = v.GetString("attio.api_key")
	}
	if v.IsSet("attio.cache_size") {
		cfg.Attio.CacheSize = v.GetInt("attio.cache_size")
	}
	if v.IsSet("search.lowercase_tokens") {
		cfg.Search.LowercaseTokens = v.GetBool("search.lowercase_tokens")
	}

	return cfg, nil
}
