package oracle

import (
	"fmt"
	servModel "oracle_predict/internal/service/oracle/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency сумма с разделителями тысяч и двумя знаками: "10,000.00 Tokens"
func FormatCurrency(amount decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64()) + " " + servModel.CurrencySymbol
}

// FormatSeconds "1h 05m 09s" или "05m 09s", если меньше часа
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%01dh %02dm %02ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%02dm %02ds", minutes, secs)
}
