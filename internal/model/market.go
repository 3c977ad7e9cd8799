package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prediction запрос на раунд до разбора прогноза
type Prediction struct {
	Kind  PredictionKind
	Guess string
	Bet   decimal.Decimal
}

// MarketStatus состояние рынка и таймеров на момент Now
type MarketStatus struct {
	Now                time.Time
	Open               bool
	Label              string
	SecondsUntilChange int
	SecondsToNextDraw  int
}

// KindRule описание типа прогноза для интерфейса
type KindRule struct {
	Kind        PredictionKind
	Label       string
	LegacyLabel string
	Multiplier  decimal.Decimal
	GuessDigits int
}

// StreakRule порог серии
type StreakRule struct {
	Streak int
	Rate   decimal.Decimal
}

// Rules фиксированные правила игры
type Rules struct {
	Kinds               []KindRule
	StreakBonuses       []StreakRule
	MinBet              decimal.Decimal
	MaxBet              decimal.Decimal
	QuickPicks          []decimal.Decimal
	JackpotContribution decimal.Decimal
	JackpotWinChance    float64
	JackpotFloor        decimal.Decimal
}
