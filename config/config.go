package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ScoringModeFlat     = "flat"
	ScoringModeWeighted = "weighted"

	MissingAnswersReject    = "reject"
	MissingAnswersIncorrect = "incorrect"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    Server
	Database  Database
	Scoring   Scoring
	Log       Log
	RateLimit RateLimit
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	DSN      string // sqlite file path or a full DSN overriding the fields above
	LogLevel string
}

type Scoring struct {
	Mode           string // flat | weighted
	MissingAnswers string // reject | incorrect
}

type Log struct {
	Level string
	File  string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.DSN = viper.GetString("DATABASE_DSN")
	config.Database.LogLevel = viper.GetString("DATABASE_LOG_LEVEL")

	config.Scoring.Mode = strings.ToLower(viper.GetString("SCORING_MODE"))
	config.Scoring.MissingAnswers = strings.ToLower(viper.GetString("SCORING_MISSING_ANSWERS"))

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	config.RateLimit.RPS = viper.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.Burst = viper.GetInt("RATE_LIMIT_BURST")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("scoring_mode", config.Scoring.Mode).
		Str("missing_answers", config.Scoring.MissingAnswers).
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_LOG_LEVEL", "warn")
	viper.SetDefault("SCORING_MODE", ScoringModeFlat)
	viper.SetDefault("SCORING_MISSING_ANSWERS", MissingAnswersReject)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
}

// Validate rejects values the rest of the application cannot act on.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	switch c.Scoring.Mode {
	case ScoringModeFlat, ScoringModeWeighted:
	default:
		return fmt.Errorf("unsupported SCORING_MODE %q", c.Scoring.Mode)
	}
	switch c.Scoring.MissingAnswers {
	case MissingAnswersReject, MissingAnswersIncorrect:
	default:
		return fmt.Errorf("unsupported SCORING_MISSING_ANSWERS %q", c.Scoring.MissingAnswers)
	}
	return nil
}
