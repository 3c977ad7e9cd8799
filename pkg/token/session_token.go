package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims подписанная ссылка на анонимную сессию.
// Личности пользователя не содержит, только ID сессии в поле jti.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken подписывает ID сессии (HS256) со сроком жизни ttl
func GenerateSessionToken(sessionID string, secretKey []byte, ttl time.Duration) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty session id")
	}

	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifySessionToken проверяет подпись и срок, возвращает claims
func VerifySessionToken(tokenStr string, secretKey []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
