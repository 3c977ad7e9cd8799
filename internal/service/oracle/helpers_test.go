package oracle

import (
	"oracle_predict/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource отдает заранее заданные значения по порядку
type fixedSource struct {
	ints   []int
	floats []float64
	intPos int
	fltPos int
}

func (s *fixedSource) IntN(n int) int {
	if s.intPos >= len(s.ints) {
		panic("fixedSource: ints exhausted")
	}
	v := s.ints[s.intPos]
	s.intPos++
	return v % n
}

func (s *fixedSource) Float64() float64 {
	if s.fltPos >= len(s.floats) {
		panic("fixedSource: floats exhausted")
	}
	v := s.floats[s.fltPos]
	s.fltPos++
	return v
}

func newFixedSource(floats []float64, ints ...int) *fixedSource {
	return &fixedSource{ints: ints, floats: floats}
}

func mustGuess(t *testing.T, kind model.PredictionKind, raw string) model.Guess {
	t.Helper()
	g, err := model.ParseGuess(kind, raw)
	require.NoError(t, err)
	return g
}

func drawOf(f1, f2 [3]int) model.Draw {
	return model.Draw{Feed1: model.NewFeed(f1), Feed2: model.NewFeed(f2)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
