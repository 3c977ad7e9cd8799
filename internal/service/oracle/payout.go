package oracle

import (
	"fmt"
	"oracle_predict/internal/model"
	servModel "oracle_predict/internal/service/oracle/model"

	"github.com/shopspring/decimal"
)

// PayoutMultiplier фиксированный множитель выплаты, 0 для неизвестного типа
func PayoutMultiplier(kind model.PredictionKind) decimal.Decimal {
	return decimal.NewFromInt(servModel.PayoutTable[kind])
}

// StreakBonusRate бонус за серию: берется самый высокий достигнутый порог
func StreakBonusRate(streak int) decimal.Decimal {
	for _, b := range servModel.StreakBonuses {
		if streak >= b.Streak {
			return b.Rate
		}
	}
	return decimal.Zero
}

// AccrueJackpot новый джекпот после взноса с одной ставки
func AccrueJackpot(jackpot, bet decimal.Decimal) decimal.Decimal {
	return jackpot.Add(bet.Mul(servModel.JackpotContributionRate))
}

// ValidateBet ставка в пределах [MinBet, MaxBet] и не больше баланса
func ValidateBet(bet, balance decimal.Decimal) error {
	if bet.LessThan(servModel.MinBet) || bet.GreaterThan(servModel.MaxBet) {
		return fmt.Errorf("%w: bet must be %s-%s %s", model.ErrInvalidBetAmount,
			servModel.MinBet, servModel.MaxBet, servModel.CurrencySymbol)
	}
	if bet.GreaterThan(balance) {
		return fmt.Errorf("%w: insufficient balance", model.ErrInvalidBetAmount)
	}
	return nil
}

// ClampBet приводит быструю ставку к допустимому диапазону
func ClampBet(bet decimal.Decimal) decimal.Decimal {
	return decimal.Min(servModel.MaxBet, decimal.Max(servModel.MinBet, bet))
}
