package env

import (
	"fmt"
	"log/slog"
	"oracle_predict/internal/config"
	"os"
)

const logLevelEnvName = "LOG_LEVEL"

type loggerConfig struct {
	level slog.Level
}

// NewLoggerConfig уровень логирования из LOG_LEVEL (debug, info, warn, error), по умолчанию info
func NewLoggerConfig() (config.LoggerConfig, error) {
	level := slog.LevelInfo
	if raw := os.Getenv(logLevelEnvName); len(raw) != 0 {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	return &loggerConfig{level: level}, nil
}

func (l *loggerConfig) Level() slog.Level {
	return l.level
}
