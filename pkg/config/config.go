// Package config loads bot settings from a YAML file with environment
// variable overrides for secrets.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	Telegram    TelegramConfig  `mapstructure:"telegram"`
	Database    DatabaseConfig  `mapstructure:"database"`
	LLM         LLMConfig       `mapstructure:"llm"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Analysis    AnalysisConfig  `mapstructure:"analysis"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
	UseInMemory bool   `mapstructure:"use_in_memory"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// Window returns the rate-limit window as a duration.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

type AnalysisConfig struct {
	AgeRange        string `mapstructure:"age_range"`
	HistorySize     int    `mapstructure:"history_size"`
	MinPhraseLength int    `mapstructure:"min_phrase_length"`
	MaxPhraseLength int    `mapstructure:"max_phrase_length"`
}

func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram token is required")
	}
	if c.LLM.APIKey == "" {
		return errors.New("llm api key is required")
	}
	if c.RateLimit.MaxRequests <= 0 {
		return errors.New("rate_limit.max_requests must be > 0")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return errors.New("rate_limit.window_seconds must be > 0")
	}
	if c.Analysis.MinPhraseLength < 1 {
		return errors.New("analysis.min_phrase_length must be >= 1")
	}
	if c.Analysis.MaxPhraseLength < c.Analysis.MinPhraseLength {
		return errors.New("analysis.max_phrase_length must be >= analysis.min_phrase_length")
	}
	return nil
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	// Remove leading slash from path to get database name
	dbName := strings.TrimPrefix(u.Path, "/")

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("environment", "production")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.use_in_memory", false)
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("rate_limit.max_requests", 10)
	v.SetDefault("rate_limit.window_seconds", 60)
	v.SetDefault("analysis.age_range", "10-17")
	v.SetDefault("analysis.history_size", 50)
	v.SetDefault("analysis.min_phrase_length", 2)
	v.SetDefault("analysis.max_phrase_length", 500)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		config.Database = dbConfig
	}

	// Get other environment variables
	if token := v.GetString("TELEGRAM_BOT_TOKEN"); token != "" {
		config.Telegram.Token = token
	}

	switch config.LLM.Provider {
	case "openai":
		if key := v.GetString("OPENAI_API_KEY"); key != "" {
			config.LLM.APIKey = key
		}
	default:
		if key := v.GetString("ANTHROPIC_API_KEY"); key != "" {
			config.LLM.APIKey = key
		}
	}

	return &config, nil
}
