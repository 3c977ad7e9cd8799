package oracle

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// GuessValue прогноз: принимает строку ("07") или число (5).
// Число переводится в строку как есть, ведущие нули не добавляются.
type GuessValue string

func (g *GuessValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("guess is required")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuessValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("guess must be a string or an integer")
	}
	*g = GuessValue(n.String())
	return nil
}

type PredictRequest struct {
	Kind  string     `json:"kind"`  // Каноническое имя типа, например "signal_digit"
	Guess GuessValue `json:"guess"` // Прогноз
	Bet   float64    `json:"bet"`   // Ставка 10-5000
}

type FeedResponse struct {
	Digits [3]int `json:"digits"` // Цифры в порядке выпадения
	Signal int    `json:"signal"` // Сумма цифр % 10
	Result string `json:"result"` // "258*5"
}

type PredictResponse struct {
	RoundID        string       `json:"round_id"`
	Kind           string       `json:"kind"`
	Guess          string       `json:"guess"`
	Feed1          FeedResponse `json:"feed1"`
	Feed2          FeedResponse `json:"feed2"`
	CombinedSignal string       `json:"combined_signal"`
	Won            bool         `json:"won"`
	Winnings       float64      `json:"winnings"`
	StreakBonus    float64      `json:"streak_bonus"`
	JackpotWon     bool         `json:"jackpot_won"`
	JackpotAmount  float64      `json:"jackpot_amount"`
	Balance        float64      `json:"balance"`
	Streak         int          `json:"streak"`
	Jackpot        float64      `json:"jackpot"`
}

type StatsResponse struct {
	Rounds       int     `json:"rounds"`
	Wins         int     `json:"wins"`
	WinRate      float64 `json:"win_rate"` // В процентах
	TotalWagered float64 `json:"total_wagered"`
	TotalPaid    float64 `json:"total_paid"`
}

type SessionResponse struct {
	SessionToken  string        `json:"session_token,omitempty"` // Только при создании
	Balance       float64       `json:"balance"`
	BalanceLabel  string        `json:"balance_label"` // "10,000.00 Tokens"
	Jackpot       float64       `json:"jackpot"`
	JackpotLabel  string        `json:"jackpot_label"`
	Streak        int           `json:"streak"`
	Stats         StatsResponse `json:"stats"`
	RecentSignals []string      `json:"recent_signals"` // Старые в начале
}

type HistoryEntryResponse struct {
	RoundID        string    `json:"round_id"`
	Timestamp      time.Time `json:"timestamp"`
	Kind           string    `json:"kind"`
	KindLabel      string    `json:"kind_label"`
	Guess          string    `json:"guess"`
	Feed1          string    `json:"feed1"` // "258*5"
	Feed2          string    `json:"feed2"`
	CombinedSignal string    `json:"combined_signal"`
	Bet            float64   `json:"bet"`
	Won            bool      `json:"won"`
	Payout         float64   `json:"payout"`
	StreakBonus    float64   `json:"streak_bonus"`
	BalanceAfter   float64   `json:"balance_after"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

type MarketResponse struct {
	Now                time.Time `json:"now"`
	Open               bool      `json:"open"`
	Label              string    `json:"label"`
	SecondsUntilChange int       `json:"seconds_until_change"`
	UntilChange        string    `json:"until_change"` // "3h 05m 00s"
	SecondsToNextDraw  int       `json:"seconds_to_next_draw"`
	NextDraw           string    `json:"next_draw"`
}

type KindResponse struct {
	Kind        string  `json:"kind"`
	Label       string  `json:"label"`
	LegacyLabel string  `json:"legacy_label"`
	Multiplier  float64 `json:"multiplier"`
	GuessDigits int     `json:"guess_digits"`
}

type StreakBonusResponse struct {
	Streak int     `json:"streak"`
	Rate   float64 `json:"rate"`
}

type RulesResponse struct {
	Kinds               []KindResponse        `json:"kinds"`
	StreakBonuses       []StreakBonusResponse `json:"streak_bonuses"`
	MinBet              float64               `json:"min_bet"`
	MaxBet              float64               `json:"max_bet"`
	QuickPicks          []float64             `json:"quick_picks"`
	JackpotContribution float64               `json:"jackpot_contribution"`
	JackpotWinChance    float64               `json:"jackpot_win_chance"`
	JackpotFloor        float64               `json:"jackpot_floor"`
}
