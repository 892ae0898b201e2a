package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string `mapstructure:"env"`          // current application environment (local, dev, prod etc)
	ContentPath string `mapstructure:"content_path"` // optional path to a JSON file with glossary/phrase overrides
	DB          DB     `mapstructure:"database"`     // database configuration section
	Quiz        Quiz   `mapstructure:"quiz"`         // quiz heuristic parameters
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Quiz groups the heuristic constants of the content-quality engine.
// The thresholds are empirical guardrails carried over from production
// tuning, exposed here so they can be adjusted without a code change.
type Quiz struct {
	MinOptionLength     int     `mapstructure:"min_option_length"`    // shortest acceptable quiz option, in characters
	MaxOptionLength     int     `mapstructure:"max_option_length"`    // longest acceptable quiz option, in characters
	WordRepeatLimit     int     `mapstructure:"word_repeat_limit"`    // a word occurring more often marks poor quality
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"` // Jaccard overlap above which meanings are too alike
	SameCategoryCap     int     `mapstructure:"same_category_cap"`    // distractor candidates taken from the same category
	OtherCategoryCap    int     `mapstructure:"other_category_cap"`   // distractor candidates taken from other categories
	DistractorCount     int     `mapstructure:"distractor_count"`     // wrong answers per question
	ChoiceCount         int     `mapstructure:"choice_count"`         // total options per question
	SampleMultiplier    int     `mapstructure:"sample_multiplier"`    // entries sampled per requested question
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Load a local .env file if present; real environments set variables directly.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("content_path", "")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	setQuizDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
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
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}

func setQuizDefaults(v *viper.Viper) {
	v.SetDefault("quiz.min_option_length", 3)
	v.SetDefault("quiz.max_option_length", 120)
	v.SetDefault("quiz.word_repeat_limit", 2)
	v.SetDefault("quiz.similarity_threshold", 0.5)
	v.SetDefault("quiz.same_category_cap", 20)
	v.SetDefault("quiz.other_category_cap", 30)
	v.SetDefault("quiz.distractor_count", 3)
	v.SetDefault("quiz.choice_count", 4)
	v.SetDefault("quiz.sample_multiplier", 5)
}

// DefaultQuiz returns the quiz parameters with their default values,
// for callers composing the engine without a config file.
func DefaultQuiz() Quiz {
	return Quiz{
		MinOptionLength:     3,
		MaxOptionLength:     120,
		WordRepeatLimit:     2,
		SimilarityThreshold: 0.5,
		SameCategoryCap:     20,
		OtherCategoryCap:    30,
		DistractorCount:     3,
		ChoiceCount:         4,
		SampleMultiplier:    5,
	}
}
