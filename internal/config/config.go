// Package config loads application configuration from file and environment
// and owns global logger initialization.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/servicegrid/match-cli/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// EngineConfig configures the matching engine.
type EngineConfig struct {
	Strategy    string        `yaml:"strategy" mapstructure:"strategy"`
	TopK        int           `yaml:"top_k" mapstructure:"top_k"`
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"`
	Weights     model.Weights `yaml:"weights" mapstructure:"weights"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// StoreConfig configures the run-history store.
type StoreConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Record bool   `yaml:"record" mapstructure:"record"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("engine.strategy", "heuristic")
	v.SetDefault("engine.top_k", 5)
	v.SetDefault("engine.concurrency", 8)
	v.SetDefault("engine.weights.skill", 0.30)
	v.SetDefault("engine.weights.location", 0.20)
	v.SetDefault("engine.weights.budget", 0.15)
	v.SetDefault("engine.weights.availability", 0.20)
	v.SetDefault("engine.weights.quality", 0.15)
	v.SetDefault("server.port", 8080)
	v.SetDefault("store.path", "match-runs.db")
	v.SetDefault("store.record", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Engine.Weights.Validate(); err != nil {
		return nil, eris.Wrap(err, "config: engine weights")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
