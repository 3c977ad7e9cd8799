package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestGameMetrics(t *testing.T) {
	ObserveRound("consensus_pattern", true, true, 1000, 505010)
	ObserveRejected("invalid_bet")
	SetWindowRTP(97.5)
	SetActiveSessions(3)

	body := scrape(t)
	assert.Contains(t, body, `oracle_predict_game_rounds_total{kind="consensus_pattern",outcome="win"} 1`)
	assert.Contains(t, body, `oracle_predict_game_jackpot_payouts_total 1`)
	assert.Contains(t, body, `oracle_predict_game_rejected_bets_total{reason="invalid_bet"} 1`)
	assert.Contains(t, body, `oracle_predict_game_window_rtp_percent 97.5`)
	assert.Contains(t, body, `oracle_predict_sessions_active 3`)
}

func TestInstrumentHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/rules/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rules/42", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Contains(t, scrape(t), `oracle_predict_http_requests_total{method="GET",route="/rules/{id}",status="418"} 1`)
}
