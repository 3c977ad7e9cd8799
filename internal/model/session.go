package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session анонимная игровая сессия одного пользователя
type Session struct {
	ID        string
	State     SessionState
	CreatedAt time.Time
	LastSeen  time.Time
}

// SessionState изменяемое состояние сессии.
// Владелец у состояния один, общих данных между сессиями нет.
type SessionState struct {
	Balance       decimal.Decimal
	Jackpot       decimal.Decimal
	Streak        int
	RecentSignals []string // Последние комбинированные сигналы, старые в начале
	History       []HistoryEntry
}

// Clone глубокая копия состояния. Раунд применяется к копии,
// чтобы отклоненная ставка не оставила частичных изменений.
func (s SessionState) Clone() SessionState {
	out := s
	out.RecentSignals = slices.Clone(s.RecentSignals)
	out.History = slices.Clone(s.History)
	return out
}

// HistoryEntry запись о сыгранном раунде. После добавления не меняется.
type HistoryEntry struct {
	ID             uuid.UUID
	Timestamp      time.Time
	Kind           PredictionKind
	Guess          string
	Feed1          string // Цифры первого фида, например "258"
	Signal1        int
	Feed2          string
	Signal2        int
	CombinedSignal string
	Bet            decimal.Decimal
	Won            bool
	Payout         decimal.Decimal // Выигрыш + джекпот (без бонуса за серию)
	StreakBonus    decimal.Decimal
	BalanceAfter   decimal.Decimal
}

// RoundResult итог одного раунда
type RoundResult struct {
	RoundID       uuid.UUID
	Kind          PredictionKind
	Guess         string
	Draw          Draw
	Won           bool
	Winnings      decimal.Decimal
	StreakBonus   decimal.Decimal
	JackpotWon    bool
	JackpotAmount decimal.Decimal
	NewBalance    decimal.Decimal
	NewStreak     int
	NewJackpot    decimal.Decimal
}

// TotalPayout все, что начислено за раунд
func (r RoundResult) TotalPayout() decimal.Decimal {
	return r.Winnings.Add(r.StreakBonus).Add(r.JackpotAmount)
}

// Stats агрегаты по истории сессии
type Stats struct {
	Rounds        int
	Wins          int
	WinRate       float64 // В процентах, 0 если раундов нет
	TotalWagered  decimal.Decimal
	TotalPaid     decimal.Decimal
	RecentSignals []string
}
