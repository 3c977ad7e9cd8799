package env

import (
	"fmt"
	"oracle_predict/internal/config"
	"os"
	"time"
)

const (
	sessionSecretEnvName = "SESSION_SECRET"
	sessionTTLEnvName    = "SESSION_TTL"

	defaultSessionTTL = 24 * time.Hour
)

type sessionConfig struct {
	secretKey string
	ttl       time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	secret := os.Getenv(sessionSecretEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret key not found")
	}

	ttl := defaultSessionTTL
	if raw := os.Getenv(sessionTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		ttl = parsed
	}

	return &sessionConfig{
		secretKey: secret,
		ttl:       ttl,
	}, nil
}

func (s *sessionConfig) TokenSecretKey() []byte {
	return []byte(s.secretKey)
}

func (s *sessionConfig) TTL() time.Duration {
	return s.ttl
}
