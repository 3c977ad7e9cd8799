package converter

import (
	"fmt"
	"math"
	dto "oracle_predict/internal/api/dto/oracle"
	"oracle_predict/internal/model"
	"oracle_predict/internal/service/oracle"
	servModel "oracle_predict/internal/service/oracle/model"

	"github.com/shopspring/decimal"
)

// ToPrediction запрос API в модель. Прогноз здесь не разбирается, только тип и ставка.
func ToPrediction(req dto.PredictRequest) (model.Prediction, error) {
	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return model.Prediction{}, err
	}
	if math.IsNaN(req.Bet) || math.IsInf(req.Bet, 0) {
		return model.Prediction{}, fmt.Errorf("%w: bet is not a number", model.ErrInvalidBetAmount)
	}

	return model.Prediction{
		Kind:  kind,
		Guess: string(req.Guess),
		Bet:   decimal.NewFromFloat(req.Bet),
	}, nil
}

func ToPredictResponse(res model.RoundResult) dto.PredictResponse {
	return dto.PredictResponse{
		RoundID:        res.RoundID.String(),
		Kind:           res.Kind.String(),
		Guess:          res.Guess,
		Feed1:          toFeedResponse(res.Draw.Feed1),
		Feed2:          toFeedResponse(res.Draw.Feed2),
		CombinedSignal: res.Draw.CombinedSignal(),
		Won:            res.Won,
		Winnings:       toFloat(res.Winnings),
		StreakBonus:    toFloat(res.StreakBonus),
		JackpotWon:     res.JackpotWon,
		JackpotAmount:  toFloat(res.JackpotAmount),
		Balance:        toFloat(res.NewBalance),
		Streak:         res.NewStreak,
		Jackpot:        toFloat(res.NewJackpot),
	}
}

func toFeedResponse(f model.Feed) dto.FeedResponse {
	return dto.FeedResponse{
		Digits: f.Digits,
		Signal: f.Signal,
		Result: f.Result(),
	}
}

func ToSessionResponse(sess model.Session) dto.SessionResponse {
	stats := oracle.ComputeStats(sess.State)
	return dto.SessionResponse{
		Balance:      toFloat(sess.State.Balance),
		BalanceLabel: oracle.FormatCurrency(sess.State.Balance),
		Jackpot:      toFloat(sess.State.Jackpot),
		JackpotLabel: oracle.FormatCurrency(sess.State.Jackpot),
		Streak:       sess.State.Streak,
		Stats: dto.StatsResponse{
			Rounds:       stats.Rounds,
			Wins:         stats.Wins,
			WinRate:      math.Round(stats.WinRate*100) / 100,
			TotalWagered: toFloat(stats.TotalWagered),
			TotalPaid:    toFloat(stats.TotalPaid),
		},
		RecentSignals: stats.RecentSignals,
	}
}

func ToHistoryResponse(entries []model.HistoryEntry) dto.HistoryResponse {
	result := make([]dto.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = dto.HistoryEntryResponse{
			RoundID:        e.ID.String(),
			Timestamp:      e.Timestamp.UTC(),
			Kind:           e.Kind.String(),
			KindLabel:      servModel.Labels[e.Kind].Theme,
			Guess:          e.Guess,
			Feed1:          fmt.Sprintf("%s*%d", e.Feed1, e.Signal1),
			Feed2:          fmt.Sprintf("%s*%d", e.Feed2, e.Signal2),
			CombinedSignal: e.CombinedSignal,
			Bet:            toFloat(e.Bet),
			Won:            e.Won,
			Payout:         toFloat(e.Payout),
			StreakBonus:    toFloat(e.StreakBonus),
			BalanceAfter:   toFloat(e.BalanceAfter),
		}
	}
	return dto.HistoryResponse{Entries: result}
}

func ToMarketResponse(m model.MarketStatus) dto.MarketResponse {
	return dto.MarketResponse{
		Now:                m.Now,
		Open:               m.Open,
		Label:              m.Label,
		SecondsUntilChange: m.SecondsUntilChange,
		UntilChange:        oracle.FormatSeconds(m.SecondsUntilChange),
		SecondsToNextDraw:  m.SecondsToNextDraw,
		NextDraw:           oracle.FormatSeconds(m.SecondsToNextDraw),
	}
}

func ToRulesResponse(r model.Rules) dto.RulesResponse {
	kinds := make([]dto.KindResponse, len(r.Kinds))
	for i, k := range r.Kinds {
		kinds[i] = dto.KindResponse{
			Kind:        k.Kind.String(),
			Label:       k.Label,
			LegacyLabel: k.LegacyLabel,
			Multiplier:  toFloat(k.Multiplier),
			GuessDigits: k.GuessDigits,
		}
	}

	streaks := make([]dto.StreakBonusResponse, len(r.StreakBonuses))
	for i, s := range r.StreakBonuses {
		streaks[i] = dto.StreakBonusResponse{Streak: s.Streak, Rate: toFloat(s.Rate)}
	}

	picks := make([]float64, len(r.QuickPicks))
	for i, q := range r.QuickPicks {
		picks[i] = toFloat(q)
	}

	return dto.RulesResponse{
		Kinds:               kinds,
		StreakBonuses:       streaks,
		MinBet:              toFloat(r.MinBet),
		MaxBet:              toFloat(r.MaxBet),
		QuickPicks:          picks,
		JackpotContribution: toFloat(r.JackpotContribution),
		JackpotWinChance:    r.JackpotWinChance,
		JackpotFloor:        toFloat(r.JackpotFloor),
	}
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
