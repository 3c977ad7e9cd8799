package oracle

import (
	"oracle_predict/internal/model"

	"github.com/shopspring/decimal"
)

// ComputeStats агрегаты по истории сессии
func ComputeStats(state model.SessionState) model.Stats {
	stats := model.Stats{
		Rounds:        len(state.History),
		TotalWagered:  decimal.Zero,
		TotalPaid:     decimal.Zero,
		RecentSignals: append([]string{}, state.RecentSignals...),
	}

	for _, h := range state.History {
		if h.Won {
			stats.Wins++
		}
		stats.TotalWagered = stats.TotalWagered.Add(h.Bet)
		stats.TotalPaid = stats.TotalPaid.Add(h.Payout).Add(h.StreakBonus)
	}

	if stats.Rounds > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Rounds) * 100
	}

	return stats
}
