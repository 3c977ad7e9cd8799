package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type SessionConfig interface {
	TokenSecretKey() []byte
	TTL() time.Duration
}

type LoggerConfig interface {
	Level() slog.Level
}

// ServerConfig настройки из config.yaml
type ServerConfig interface {
	AllowedOrigins() []string
	MaxSessions() int
	StatsWindowSize() int
}
