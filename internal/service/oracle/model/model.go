package model

import (
	"oracle_predict/internal/model"

	"github.com/shopspring/decimal"
)

// PayoutTable фиксированные множители выплат по типу прогноза
var PayoutTable = map[model.PredictionKind]int64{
	model.SignalDigit:      10,
	model.CombinedSignal:   90,
	model.UniquePattern:    150,
	model.RepeatingPattern: 300,
	model.ConsensusPattern: 500,
}

// StreakBonus порог серии побед и бонус в доле от ставки
type StreakBonus struct {
	Streak int
	Rate   decimal.Decimal
}

// StreakBonuses пороги серий, отсортированы по убыванию
var StreakBonuses = []StreakBonus{
	{Streak: 10, Rate: decimal.RequireFromString("0.50")},
	{Streak: 5, Rate: decimal.RequireFromString("0.20")},
	{Streak: 3, Rate: decimal.RequireFromString("0.10")},
}

// Label подписи типа прогноза для интерфейса
type Label struct {
	Theme  string // Название в текущей теме
	Legacy string // Исходное название игры
}

// Labels таблица подписей. Логика по подписям не ветвится.
var Labels = map[model.PredictionKind]Label{
	model.SignalDigit:      {Theme: "Signal Prediction", Legacy: "Royal Single"},
	model.CombinedSignal:   {Theme: "Combined Signal", Legacy: "Golden Jodi"},
	model.UniquePattern:    {Theme: "Unique Oracle Pattern", Legacy: "Triple Crown"},
	model.RepeatingPattern: {Theme: "Repeating Oracle Pattern", Legacy: "Double Fortune"},
	model.ConsensusPattern: {Theme: "Consensus Oracle Pattern", Legacy: "Royal Flush"},
}

var (
	// MinBet минимальная ставка
	MinBet = decimal.NewFromInt(10)
	// MaxBet максимальная ставка
	MaxBet = decimal.NewFromInt(5000)
	// InitialBalance стартовый баланс сессии
	InitialBalance = decimal.NewFromInt(10000)
	// JackpotFloor стартовое значение джекпота и значение после выплаты
	JackpotFloor = decimal.NewFromInt(5000)
	// JackpotContributionRate доля каждой ставки, уходящая в джекпот (1%)
	JackpotContributionRate = decimal.RequireFromString("0.01")
	// QuickPicks быстрые ставки для интерфейса
	QuickPicks = []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(500),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(5000),
	}
)

const (
	// JackpotWinChance шанс выплаты джекпота при выигрыше ConsensusPattern
	JackpotWinChance = 0.05
	// RecentSignalsCap сколько последних комбинированных сигналов хранить
	RecentSignalsCap = 10

	// Часы работы рынка (UTC), полуинтервал [open, close)
	MarketOpenHourUTC  = 9
	MarketCloseHourUTC = 21
	// DrawIntervalMinutes условный интервал розыгрышей, только для отображения
	DrawIntervalMinutes = 5

	// CurrencySymbol подпись валюты
	CurrencySymbol = "Tokens"
)
