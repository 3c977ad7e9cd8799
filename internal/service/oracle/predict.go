package oracle

import (
	"context"
	"errors"
	"log/slog"
	"oracle_predict/internal/metrics"
	"oracle_predict/internal/model"
)

// Predict разбирает прогноз и разыгрывает раунд в сессии.
// Раунд применяется к копии состояния внутри Update, поэтому отклоненная ставка ничего не меняет.
func (s *serv) Predict(ctx context.Context, sessionID string, req model.Prediction) (*model.RoundResult, *model.Session, error) {
	guess, err := model.ParseGuess(req.Kind, req.Guess)
	if err != nil {
		metrics.ObserveRejected("invalid_guess")
		return nil, nil, err
	}

	var res model.RoundResult
	sess, err := s.repo.Update(ctx, sessionID, func(state *model.SessionState) error {
		r, err := s.engine.PlaceBet(req.Kind, guess, req.Bet, state)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidBetAmount) {
			metrics.ObserveRejected("invalid_bet")
		}
		return nil, nil, err
	}

	bet := req.Bet.InexactFloat64()
	payout := res.TotalPayout().InexactFloat64()
	s.statsRepo.UpdateState(bet, payout)
	metrics.ObserveRound(req.Kind.String(), res.Won, res.JackpotWon, bet, payout)
	metrics.SetWindowRTP(s.statsRepo.RTPState().WindowRTP)

	slog.Debug("round resolved",
		"round_id", res.RoundID,
		"kind", req.Kind.String(),
		"guess", guess.String(),
		"combined_signal", res.Draw.CombinedSignal(),
		"won", res.Won,
		"jackpot_won", res.JackpotWon,
		"balance", res.NewBalance.StringFixed(2),
	)

	return &res, sess, nil
}
