package oracle

import (
	servModel "oracle_predict/internal/service/oracle/model"
	"time"
)

const (
	labelMarketOpen   = "Market Open | Closes in:"
	labelMarketClosed = "Market Monitoring | Opens in:"
)

// IsMarketOpen статус рынка по окну [09:00, 21:00) UTC.
// Чисто косметика: на возможность играть не влияет.
func IsMarketOpen(now time.Time) (bool, string, int) {
	now = now.UTC()
	y, m, d := now.Date()
	openAt := time.Date(y, m, d, servModel.MarketOpenHourUTC, 0, 0, 0, time.UTC)
	closeAt := time.Date(y, m, d, servModel.MarketCloseHourUTC, 0, 0, 0, time.UTC)

	if !now.Before(openAt) && now.Before(closeAt) {
		return true, labelMarketOpen, secondsUntil(now, closeAt)
	}

	next := openAt
	if !now.Before(openAt) {
		next = openAt.AddDate(0, 0, 1)
	}
	return false, labelMarketClosed, secondsUntil(now, next)
}

// TimeToNextDraw секунды до следующей границы интервала DrawIntervalMinutes
func TimeToNextDraw(now time.Time) int {
	now = now.UTC()
	hourStart := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, time.UTC)
	interval := servModel.DrawIntervalMinutes
	nextMinute := (now.Minute()/interval + 1) * interval
	// nextMinute == 60 дает начало следующего часа
	next := hourStart.Add(time.Duration(nextMinute) * time.Minute)
	return secondsUntil(now, next)
}

func secondsUntil(now, t time.Time) int {
	secs := int(t.Sub(now) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
