package middleware

import (
	"context"
	"net/http"
	"oracle_predict/pkg/resp"
	"oracle_predict/pkg/token"
	"strings"
)

const (
	// SessionCookieName cookie с подписанным токеном сессии
	SessionCookieName = "session_token"
	// SessionHeaderName альтернатива cookie для клиентов без браузера
	SessionHeaderName = "X-Session-Token"
)

type ctxKey struct{}

// Session достает токен сессии из cookie или заголовка, проверяет подпись
// и кладет ID сессии в контекст. Невалидный токен считается отсутствующим.
func Session(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw != "" {
				claims, err := token.VerifySessionToken(raw, secretKey)
				if err == nil {
					r = r.WithContext(ContextWithSessionID(r.Context(), claims.ID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession 401, если в контексте нет сессии
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionIDFromContext(r.Context()); !ok {
			resp.WriteError(w, http.StatusUnauthorized, "no active session")
			return
		}
		next(w, r)
	}
}

func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return strings.TrimSpace(r.Header.Get(SessionHeaderName))
}
