package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry коллекторы приложения
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oracle_predict",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"method", "route"},
	)

	rounds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "rounds_total",
			Help:      "Resolved rounds by prediction kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	wagered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "wagered_tokens_total",
			Help:      "Total tokens wagered.",
		},
	)

	paidOut = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "paid_tokens_total",
			Help:      "Total tokens paid out, including streak bonuses and jackpots.",
		},
	)

	jackpots = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "jackpot_payouts_total",
			Help:      "Number of jackpot payouts.",
		},
	)

	rejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "rejected_bets_total",
			Help:      "Bets rejected before any state change.",
		},
		[]string{"reason"},
	)

	windowRTP = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "oracle_predict",
			Subsystem: "game",
			Name:      "window_rtp_percent",
			Help:      "Return to player over the recent rounds window.",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "oracle_predict",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Live sessions held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		rounds,
		wagered,
		paidOut,
		jackpots,
		rejected,
		windowRTP,
		activeSessions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler экспозиция метрик
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler middleware для chi: считает запросы по шаблону маршрута
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if pattern := rc.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveRound учесть сыгранный раунд
func ObserveRound(kind string, won, jackpotWon bool, bet, payout float64) {
	outcome := "loss"
	if won {
		outcome = "win"
	}
	rounds.WithLabelValues(kind, outcome).Inc()
	wagered.Add(bet)
	paidOut.Add(payout)
	if jackpotWon {
		jackpots.Inc()
	}
}

// ObserveRejected учесть отклоненную ставку
func ObserveRejected(reason string) {
	rejected.WithLabelValues(reason).Inc()
}

// SetWindowRTP текущий RTP окна
func SetWindowRTP(v float64) {
	windowRTP.Set(v)
}

// SetActiveSessions количество живых сессий
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
