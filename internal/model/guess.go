package model

import (
	"fmt"
	"strings"
)

// Guess проверенный прогноз пользователя.
// Создается только через ParseGuess, поэтому количество цифр всегда
// совпадает с типом прогноза.
type Guess struct {
	kind   PredictionKind
	digits []int
}

// ParseGuess разбирает ввод пользователя для выбранного типа прогноза.
// Допускаются только ASCII цифры в количестве kind.GuessDigits(), без знаков и разделителей.
func ParseGuess(kind PredictionKind, raw string) (Guess, error) {
	if !kind.Valid() {
		return Guess{}, fmt.Errorf("%w: kind %d", ErrUnknownPredictionKind, int(kind))
	}

	s := strings.TrimSpace(raw)
	want := kind.GuessDigits()
	if len(s) != want {
		return Guess{}, fmt.Errorf("%w: %s expects %d digits, got %q", ErrInvalidGuessFormat, kind, want, raw)
	}

	digits := make([]int, 0, want)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Guess{}, fmt.Errorf("%w: %q is not a digit string", ErrInvalidGuessFormat, raw)
		}
		digits = append(digits, int(c-'0'))
	}

	return Guess{kind: kind, digits: digits}, nil
}

// Kind тип прогноза, под который разобран ввод
func (g Guess) Kind() PredictionKind {
	return g.kind
}

// Digits копия цифр прогноза в порядке ввода
func (g Guess) Digits() []int {
	out := make([]int, len(g.digits))
	copy(out, g.digits)
	return out
}

// Value числовое значение прогноза (для SignalDigit это сама цифра)
func (g Guess) Value() int {
	v := 0
	for _, d := range g.digits {
		v = v*10 + d
	}
	return v
}

// String прогноз с ведущими нулями, например "07" или "112"
func (g Guess) String() string {
	var b strings.Builder
	for _, d := range g.digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// IsZero true для незаполненного значения
func (g Guess) IsZero() bool {
	return len(g.digits) == 0
}
