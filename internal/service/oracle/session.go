package oracle

import (
	"context"
	"oracle_predict/internal/metrics"
	"oracle_predict/internal/model"
	servModel "oracle_predict/internal/service/oracle/model"
	"time"

	"github.com/shopspring/decimal"
)

// NewSession создает сессию в начальном состоянии
func (s *serv) NewSession(ctx context.Context) (*model.Session, error) {
	sess, err := s.repo.Create(ctx, ResetSession())
	if err != nil {
		return nil, err
	}
	metrics.SetActiveSessions(s.repo.Count())
	return sess, nil
}

func (s *serv) Session(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.repo.Get(ctx, sessionID)
}

// Reset возвращает сессию в начальное состояние, ID сохраняется
func (s *serv) Reset(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.repo.Update(ctx, sessionID, func(state *model.SessionState) error {
		*state = ResetSession()
		return nil
	})
}

// History последние limit записей, старые в начале; limit <= 0 - вся история
func (s *serv) History(ctx context.Context, sessionID string, limit int) ([]model.HistoryEntry, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.State.History
	if limit > 0 && limit < len(history) {
		history = history[len(history)-limit:]
	}
	return history, nil
}

func (s *serv) Market(now time.Time) model.MarketStatus {
	open, label, secs := IsMarketOpen(now)
	return model.MarketStatus{
		Now:                now.UTC(),
		Open:               open,
		Label:              label,
		SecondsUntilChange: secs,
		SecondsToNextDraw:  TimeToNextDraw(now),
	}
}

func (s *serv) Rules() model.Rules {
	return BuildRules()
}

// BuildRules фиксированные правила в виде для интерфейса
func BuildRules() model.Rules {
	kinds := make([]model.KindRule, 0, len(model.Kinds))
	for _, k := range model.Kinds {
		label := servModel.Labels[k]
		kinds = append(kinds, model.KindRule{
			Kind:        k,
			Label:       label.Theme,
			LegacyLabel: label.Legacy,
			Multiplier:  PayoutMultiplier(k),
			GuessDigits: k.GuessDigits(),
		})
	}

	streaks := make([]model.StreakRule, 0, len(servModel.StreakBonuses))
	// В выдаче пороги по возрастанию
	for i := len(servModel.StreakBonuses) - 1; i >= 0; i-- {
		b := servModel.StreakBonuses[i]
		streaks = append(streaks, model.StreakRule{Streak: b.Streak, Rate: b.Rate})
	}

	quick := make([]decimal.Decimal, 0, len(servModel.QuickPicks))
	for _, q := range servModel.QuickPicks {
		quick = append(quick, ClampBet(q))
	}

	return model.Rules{
		Kinds:               kinds,
		StreakBonuses:       streaks,
		MinBet:              servModel.MinBet,
		MaxBet:              servModel.MaxBet,
		QuickPicks:          quick,
		JackpotContribution: servModel.JackpotContributionRate,
		JackpotWinChance:    servModel.JackpotWinChance,
		JackpotFloor:        servModel.JackpotFloor,
	}
}
