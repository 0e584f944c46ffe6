package config

import (
	"errors"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel    string           `mapstructure:"log_level"`
	SearchDepth int              `mapstructure:"search_depth"`
	Evaluation  string           `mapstructure:"evaluation"`
	Server      ServerConfig     `mapstructure:"server"`
	Experiment  ExperimentConfig `mapstructure:"experiment"`
}

type ServerConfig struct {
	Port     int `mapstructure:"port"`
	MaxDepth int `mapstructure:"max_depth"`
}

type ExperimentConfig struct {
	Name      string                `mapstructure:"name"`
	Games     int                   `mapstructure:"games"`
	OutputDir string                `mapstructure:"output_dir"`
	Agents    []metrics.AgentConfig `mapstructure:"agents"`
	MatchUps  [][]int               `mapstructure:"matchups"` // Pairs of agent IDs
}

// Load reads the config file at path (any format viper understands) on top of
// the defaults in meta. Environment variables prefixed with OTHELLO_ override
// both, e.g. OTHELLO_SERVER_PORT. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("search_depth", meta.SEARCH_DEPTH)
	v.SetDefault("evaluation", meta.EVALUATION)
	v.SetDefault("server.port", meta.SERVER_PORT)
	v.SetDefault("server.max_depth", meta.MAX_DEPTH)
	v.SetDefault("experiment.name", "depth")
	v.SetDefault("experiment.games", meta.NUM_GAMES)
	v.SetDefault("experiment.output_dir", meta.OUTPUT_DIR)

	v.SetEnvPrefix("OTHELLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SearchDepth < 0 {
		return fmt.Errorf("%w: search_depth %d is negative", ErrInvalidConfig, c.SearchDepth)
	}
	if _, ok := game.Evaluations[c.Evaluation]; !ok {
		return fmt.Errorf("%w: unknown evaluation %q", ErrInvalidConfig, c.Evaluation)
	}
	if c.Server.MaxDepth < 0 {
		return fmt.Errorf("%w: server.max_depth %d is negative", ErrInvalidConfig, c.Server.MaxDepth)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: experiment.games must be positive", ErrInvalidConfig)
	}

	ids := make(map[int]bool, len(c.Experiment.Agents))
	for _, a := range c.Experiment.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
	}
	for _, pair := range c.Experiment.MatchUps {
		if len(pair) != 2 {
			return fmt.Errorf("%w: match up %v must name two agents", ErrInvalidConfig, pair)
		}
		for _, id := range pair {
			if !ids[id] {
				return fmt.Errorf("%w: match up %v names unknown agent %d", ErrInvalidConfig, pair, id)
			}
		}
	}
	return nil
}
