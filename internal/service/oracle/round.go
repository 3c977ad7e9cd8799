package oracle

import (
	"errors"
	"fmt"
	"oracle_predict/internal/model"
	servModel "oracle_predict/internal/service/oracle/model"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine движок правил: розыгрыш, проверка прогноза, выплаты.
// Собственного состояния кроме источников случайности, времени и ID не хранит.
type Engine struct {
	rnd   RandomSource
	now   func() time.Time
	newID func() uuid.UUID
}

// NewEngine создать движок с заданным источником случайности
func NewEngine(rnd RandomSource) *Engine {
	return &Engine{
		rnd:   rnd,
		now:   time.Now,
		newID: uuid.New,
	}
}

// ResetSession начальное состояние сессии
func ResetSession() model.SessionState {
	return model.SessionState{
		Balance:       servModel.InitialBalance,
		Jackpot:       servModel.JackpotFloor,
		Streak:        0,
		RecentSignals: []string{},
		History:       []model.HistoryEntry{},
	}
}

// PlaceBet разыгрывает один раунд.
// Сначала проверяются прогноз и ставка; при ошибке session не меняется.
// При успехе все изменения применяются к session одним шагом в конце.
func (e *Engine) PlaceBet(kind model.PredictionKind, guess model.Guess, bet decimal.Decimal, session *model.SessionState) (model.RoundResult, error) {
	if session == nil {
		return model.RoundResult{}, errors.New("session state is nil")
	}
	if guess.IsZero() || guess.Kind() != kind {
		return model.RoundResult{}, fmt.Errorf("%w: guess is not parsed for %s", model.ErrInvalidGuessFormat, kind)
	}
	if err := ValidateBet(bet, session.Balance); err != nil {
		return model.RoundResult{}, err
	}

	// Списание ставки и взнос в джекпот до розыгрыша
	balance := session.Balance.Sub(bet)
	jackpot := AccrueJackpot(session.Jackpot, bet)

	draw := GenerateDraw(e.rnd)
	won := Evaluate(kind, guess, draw)

	streak := session.Streak
	winnings := decimal.Zero
	bonus := decimal.Zero
	jackpotAmount := decimal.Zero
	jackpotWon := false

	if won {
		winnings = bet.Mul(PayoutMultiplier(kind))
		balance = balance.Add(winnings)
		streak++

		// Джекпот только при выигрыше ConsensusPattern, отдельным броском
		if kind == model.ConsensusPattern && e.rnd.Float64() < servModel.JackpotWinChance {
			jackpotAmount = jackpot
			balance = balance.Add(jackpotAmount)
			jackpot = servModel.JackpotFloor
			jackpotWon = true
		}

		// Выплата джекпота отменяет бонус за серию в этом раунде
		if !jackpotWon {
			if rate := StreakBonusRate(streak); rate.IsPositive() {
				bonus = bet.Mul(rate)
				balance = balance.Add(bonus)
			}
		}
	} else {
		streak = 0
	}

	roundID := e.newID()
	combined := draw.CombinedSignal()
	entry := model.HistoryEntry{
		ID:             roundID,
		Timestamp:      e.now(),
		Kind:           kind,
		Guess:          guess.String(),
		Feed1:          draw.Feed1.DigitString(),
		Signal1:        draw.Feed1.Signal,
		Feed2:          draw.Feed2.DigitString(),
		Signal2:        draw.Feed2.Signal,
		CombinedSignal: combined,
		Bet:            bet,
		Won:            won,
		Payout:         winnings.Add(jackpotAmount),
		StreakBonus:    bonus,
		BalanceAfter:   balance,
	}

	session.Balance = balance
	session.Jackpot = jackpot
	session.Streak = streak
	session.RecentSignals = pushSignal(session.RecentSignals, combined)
	session.History = append(session.History, entry)

	return model.RoundResult{
		RoundID:       roundID,
		Kind:          kind,
		Guess:         guess.String(),
		Draw:          draw,
		Won:           won,
		Winnings:      winnings,
		StreakBonus:   bonus,
		JackpotWon:    jackpotWon,
		JackpotAmount: jackpotAmount,
		NewBalance:    balance,
		NewStreak:     streak,
		NewJackpot:    jackpot,
	}, nil
}

// pushSignal добавляет сигнал в хвост, вытесняя самые старые сверх RecentSignalsCap.
// Возвращает новый слайс, исходный не трогается.
func pushSignal(trail []string, signal string) []string {
	start := 0
	if len(trail) >= servModel.RecentSignalsCap {
		start = len(trail) - servModel.RecentSignalsCap + 1
	}
	out := make([]string, 0, servModel.RecentSignalsCap)
	out = append(out, trail[start:]...)
	return append(out, signal)
}
