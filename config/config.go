package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Cards     CardsConfig     `mapstructure:"cards"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// CardsConfig shapes the random cards created at start-up.
type CardsConfig struct {
	InitialCount    int    `mapstructure:"initial_count"`
	MaxTransactions int    `mapstructure:"max_transactions"`
	BalanceBound    int64  `mapstructure:"balance_bound"` // balances and amounts in [-bound, bound]
	HistoryDays     int    `mapstructure:"history_days"`
	Seed            uint64 `mapstructure:"seed"` // 0 = seed from the runtime
}

// GeneratorConfig selects the card number layout.
type GeneratorConfig struct {
	Layout        string `mapstructure:"layout"`         // corrected, legacy
	LegacyTagging bool   `mapstructure:"legacy_tagging"` // tag transactions with an unrelated number
}

// Upper limits the card factory can represent: the balance range must fit
// in int64 and the history window in a time.Duration.
const (
	MaxBalanceBound = math.MaxInt64 / 2
	MaxHistoryDays  = int(math.MaxInt64 / int64(24*time.Hour))
)

// Validate rejects values the card factory cannot work with.
func (c *Config) Validate() error {
	if c.Cards.InitialCount < 0 {
		return fmt.Errorf("cards.initial_count must be >= 0, got %d", c.Cards.InitialCount)
	}
	if c.Cards.MaxTransactions < 1 {
		return fmt.Errorf("cards.max_transactions must be >= 1, got %d", c.Cards.MaxTransactions)
	}
	if c.Cards.BalanceBound < 0 || c.Cards.BalanceBound > MaxBalanceBound {
		return fmt.Errorf("cards.balance_bound must be between 0 and %d, got %d", int64(MaxBalanceBound), c.Cards.BalanceBound)
	}
	if c.Cards.HistoryDays < 0 || c.Cards.HistoryDays > MaxHistoryDays {
		return fmt.Errorf("cards.history_days must be between 0 and %d, got %d", MaxHistoryDays, c.Cards.HistoryDays)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	switch strings.ToLower(strings.TrimSpace(c.Generator.Layout)) {
	case "corrected", "legacy":
	default:
		return fmt.Errorf("generator.layout must be corrected or legacy, got %q", c.Generator.Layout)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CALFIN_.
// Nested keys use underscore: CALFIN_SERVER_PORT, CALFIN_CARDS_INITIAL_COUNT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("cards.initial_count", 10)
	v.SetDefault("cards.max_transactions", 10)
	v.SetDefault("cards.balance_bound", 10000)
	v.SetDefault("cards.history_days", 10000)
	v.SetDefault("cards.seed", 0)
	v.SetDefault("generator.layout", "corrected")
	v.SetDefault("generator.legacy_tagging", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CALFIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional; defaults and env vars are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
