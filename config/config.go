package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Voice     VoiceConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VoiceConfig holds voice command configuration
type VoiceConfig struct {
	DefaultLocale    string   `mapstructure:"default_locale"`
	SupportedLocales []string `mapstructure:"supported_locales"`
	SuggestionLimit  int      `mapstructure:"suggestion_limit"`
	DebugLogging     bool     `mapstructure:"debug_logging"`
}

// CatalogConfig holds catalog configuration
type CatalogConfig struct {
	DefaultCategory string   `mapstructure:"default_category"`
	Categories      []string `mapstructure:"categories"`
	SortLocale      string   `mapstructure:"sort_locale"`
	SeedFile        string   `mapstructure:"seed_file"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrylist/")

	// PANTRYLIST_VOICE_DEFAULT_LOCALE -> voice.default_locale
	v.SetEnvPrefix("PANTRYLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Voice defaults
	v.SetDefault("voice.default_locale", "el-GR")
	v.SetDefault("voice.supported_locales", []string{"el-GR", "en-US"})
	v.SetDefault("voice.suggestion_limit", 3)
	v.SetDefault("voice.debug_logging", false)

	// Catalog defaults
	v.SetDefault("catalog.default_category", "Groceries")
	v.SetDefault("catalog.categories", []string{"Fruits", "Vegetables", "Bakery", "Dairy", "Pantry", "Groceries"})
	v.SetDefault("catalog.sort_locale", "el")
	v.SetDefault("catalog.seed_file", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if len(config.Voice.SupportedLocales) == 0 {
		return fmt.Errorf("at least one supported voice locale is required")
	}

	supported := make(map[string]bool, len(config.Voice.SupportedLocales))
	for _, l := range config.Voice.SupportedLocales {
		tag, err := language.Parse(l)
		if err != nil {
			return fmt.Errorf("invalid voice locale %q: %w", l, err)
		}
		supported[tag.String()] = true
	}

	defaultTag, err := language.Parse(config.Voice.DefaultLocale)
	if err != nil {
		return fmt.Errorf("invalid default voice locale %q: %w", config.Voice.DefaultLocale, err)
	}
	if !supported[defaultTag.String()] {
		return fmt.Errorf("default voice locale %s is not in supported locales %v", defaultTag, config.Voice.SupportedLocales)
	}

	if config.Voice.SuggestionLimit < 0 {
		return fmt.Errorf("voice suggestion limit must not be negative, got: %d", config.Voice.SuggestionLimit)
	}

	if strings.TrimSpace(config.Catalog.DefaultCategory) == "" {
		return fmt.Errorf("catalog default category is required (set PANTRYLIST_CATALOG_DEFAULT_CATEGORY)")
	}

	if _, err := language.Parse(config.Catalog.SortLocale); err != nil {
		return fmt.Errorf("invalid catalog sort locale %q: %w", config.Catalog.SortLocale, err)
	}

	if config.RateLimit.PerIP <= 0 || config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive, got per_ip=%d burst=%d", config.RateLimit.PerIP, config.RateLimit.Burst)
	}

	return nil
}

// SortTag returns the collation locale for catalog sorting
func (c CatalogConfig) SortTag() language.Tag {
	tag, err := language.Parse(c.SortLocale)
	if err != nil {
		return language.Und
	}
	return tag
}
