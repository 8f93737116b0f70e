package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"` // current application environment (local, dev, prod etc)
	TelegramAPIToken string   `mapstructure:"-"`   // Telegram API token loaded from environment
	WordList         WordList `mapstructure:"wordlist"` // per-date word list source
	Reminder         Reminder `mapstructure:"reminder"` // daily reminder digest
	DB               DB       `mapstructure:"database"` // database configuration section
}

// WordList configures where per-date word-list files come from. Exactly one
// of BaseURL (remote) or Dir (local) should be set; BaseURL wins when both
// are.
type WordList struct {
	BaseURL string `mapstructure:"base_url"` // remote base URL serving <DDMMYY>.json
	Dir     string `mapstructure:"dir"`      // local directory with <DDMMYY>.json files
}

// Reminder configures the daily study reminder.
type Reminder struct {
	Cron   string `mapstructure:"cron"` // cron spec for the digest, UTC
	ChatID int64  `mapstructure:"-"`    // chat to notify, loaded from environment; 0 disables reminders
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("wordlist.dir", "assets/wordlists")
	v.SetDefault("reminder.cron", "0 9 * * *")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("reminder_chat_id", "REMINDER_CHAT_ID")
	_ = v.BindEnv("wordlist.base_url", "WORDLIST_BASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Reminder.ChatID = v.GetInt64("reminder_chat_id")

	return &cfg, nil
}
