package env

import (
	"fmt"
	"oracle_predict/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxSessions     = 10000
	defaultStatsWindowSize = 500
)

type serverYAML struct {
	Server struct {
		CORS struct {
			AllowedOrigins []string `yaml:"allowed_origins"`
		} `yaml:"cors"`
	} `yaml:"server"`
	Sessions struct {
		MaxSessions int `yaml:"max_sessions"`
	} `yaml:"sessions"`
	Stats struct {
		WindowSize int `yaml:"window_size"`
	} `yaml:"stats"`
}

type serverConfig struct {
	allowedOrigins  []string
	maxSessions     int
	statsWindowSize int
}

// NewServerConfigFromYAML читает настройки сервера из yaml файла
func NewServerConfigFromYAML(path string) (config.ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw serverYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := &serverConfig{
		allowedOrigins:  raw.Server.CORS.AllowedOrigins,
		maxSessions:     raw.Sessions.MaxSessions,
		statsWindowSize: raw.Stats.WindowSize,
	}
	if len(cfg.allowedOrigins) == 0 {
		cfg.allowedOrigins = []string{"*"}
	}
	if cfg.maxSessions <= 0 {
		cfg.maxSessions = defaultMaxSessions
	}
	if cfg.statsWindowSize <= 0 {
		cfg.statsWindowSize = defaultStatsWindowSize
	}

	return cfg, nil
}

func (c *serverConfig) AllowedOrigins() []string {
	return c.allowedOrigins
}

func (c *serverConfig) MaxSessions() int {
	return c.maxSessions
}

func (c *serverConfig) StatsWindowSize() int {
	return c.statsWindowSize
}
