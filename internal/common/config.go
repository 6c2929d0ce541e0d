package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	Content     ContentConfig   `toml:"content"`
	Media       MediaConfig     `toml:"media"`
	Forms       FormsConfig     `toml:"forms"`
	Mailer      MailerConfig    `toml:"mailer"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Format string   `toml:"format"` // "json" or "text"
	Output []string `toml:"output"` // "stdout", "file"
}

// ContentConfig controls content seeding and listing behavior
type ContentConfig struct {
	SeedDir      string `toml:"seed_dir"`      // Directory containing content seed files (TOML/YAML)
	DefaultLimit int    `toml:"default_limit"` // Default page size for list endpoints
	FacetCap     int    `toml:"facet_cap"`     // Max documents scanned per facet extraction
	RelatedCount int    `toml:"related_count"` // Number of related items returned on detail pages
}

// MediaConfig controls how media references resolve to URLs
type MediaConfig struct {
	BaseURL     string `toml:"base_url"`    // Prefix for relative media paths (e.g. CDN root)
	Placeholder string `toml:"placeholder"` // Fallback image path for unresolved references
}

// FormsConfig controls public form submission behavior
type FormsConfig struct {
	RateLimitPerMinute int    `toml:"rate_limit_per_minute"` // Lead POSTs allowed per minute per remote IP
	NotifyEmail        string `toml:"notify_email"`          // Address to notify on new contact/quote leads
}

type MailerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
	UseTLS   bool   `toml:"use_tls"`
}

// SchedulerConfig contains cron schedules for background maintenance
type SchedulerConfig struct {
	Enabled             bool   `toml:"enabled"`
	EventStatusSchedule string `toml:"event_status_schedule"` // Cron expression for the event status refresher
}

// NewDefaultConfig returns configuration defaults before any file or env overrides
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/vitrine",
				ResetOnStartup: false,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout"},
		},
		Content: ContentConfig{
			SeedDir:      "./content",
			DefaultLimit: 12,
			FacetCap:     1000,
			RelatedCount: 3,
		},
		Media: MediaConfig{
			BaseURL:     "",
			Placeholder: "/images/placeholder.svg",
		},
		Forms: FormsConfig{
			RateLimitPerMinute: 5,
		},
		Mailer: MailerConfig{
			Port:     587,
			UseTLS:   true,
			FromName: "Vitrine",
		},
		Scheduler: SchedulerConfig{
			Enabled:             true,
			EventStatusSchedule: "0 * * * *", // Hourly
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VITRINE_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("VITRINE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("VITRINE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if badgerPath := os.Getenv("VITRINE_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if level := os.Getenv("VITRINE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("VITRINE_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if seedDir := os.Getenv("VITRINE_CONTENT_SEED_DIR"); seedDir != "" {
		config.Content.SeedDir = seedDir
	}
	if mediaBase := os.Getenv("VITRINE_MEDIA_BASE_URL"); mediaBase != "" {
		config.Media.BaseURL = mediaBase
	}

	if host := os.Getenv("VITRINE_SMTP_HOST"); host != "" {
		config.Mailer.Host = host
	}
	if user := os.Getenv("VITRINE_SMTP_USERNAME"); user != "" {
		config.Mailer.Username = user
	}
	if pass := os.Getenv("VITRINE_SMTP_PASSWORD"); pass != "" {
		config.Mailer.Password = pass
	}
	if from := os.Getenv("VITRINE_SMTP_FROM"); from != "" {
		config.Mailer.From = from
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true when running with a production environment setting
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
