package oracle

import (
	"oracle_predict/internal/model"
	"slices"
)

// Evaluate проверяет прогноз против розыгрыша.
// Любое несоответствие (чужой тип, неверное число цифр) считается проигрышем.
func Evaluate(kind model.PredictionKind, guess model.Guess, draw model.Draw) bool {
	if guess.Kind() != kind {
		return false
	}
	digits := guess.Digits()
	if len(digits) != kind.GuessDigits() {
		return false
	}

	switch kind {
	case model.SignalDigit:
		v := guess.Value()
		return v == draw.Feed1.Signal || v == draw.Feed2.Signal
	case model.CombinedSignal:
		return guess.String() == draw.CombinedSignal()
	}

	if kind.IsPattern() {
		if !matchesShape(kind, digits) {
			return false
		}
		return matchesFeed(kind, digits, draw.Feed1) || matchesFeed(kind, digits, draw.Feed2)
	}
	return false
}

// matchesFeed совпадение мультимножеств цифр, при этом сам фид тоже должен иметь форму типа
func matchesFeed(kind model.PredictionKind, guess []int, feed model.Feed) bool {
	feedDigits := feed.Digits[:]
	if !matchesShape(kind, feedDigits) {
		return false
	}
	return slices.Equal(sortedDigits(guess), sortedDigits(feedDigits))
}

// matchesShape форма тройки: Unique - 3 разные цифры, Repeating - XXY, Consensus - XXX
func matchesShape(kind model.PredictionKind, digits []int) bool {
	if len(digits) != 3 {
		return false
	}
	counts := make(map[int]int, 3)
	for _, d := range digits {
		counts[d]++
	}

	switch kind {
	case model.UniquePattern:
		return len(counts) == 3
	case model.RepeatingPattern:
		if len(counts) != 2 {
			return false
		}
		for _, c := range counts {
			if c == 2 {
				return true
			}
		}
		return false
	case model.ConsensusPattern:
		return len(counts) == 1
	}
	return false
}

func sortedDigits(digits []int) []int {
	out := slices.Clone(digits)
	slices.Sort(out)
	return out
}
