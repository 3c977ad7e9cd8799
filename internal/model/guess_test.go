package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]PredictionKind{
		"signal_digit":       SignalDigit,
		"combined_signal":    CombinedSignal,
		"Unique_Pattern":     UniquePattern,
		" repeating-pattern": RepeatingPattern,
		"CONSENSUS_PATTERN ": ConsensusPattern,
	}
	for raw, want := range tests {
		got, err := ParseKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("royal_flush")
	assert.ErrorIs(t, err, ErrUnknownPredictionKind)
	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrUnknownPredictionKind)
}

func TestPredictionKind(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid())
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, 1, SignalDigit.GuessDigits())
	assert.Equal(t, 2, CombinedSignal.GuessDigits())
	assert.Equal(t, 3, ConsensusPattern.GuessDigits())
	assert.True(t, RepeatingPattern.IsPattern())
	assert.False(t, CombinedSignal.IsPattern())

	unknown := PredictionKind(0)
	assert.False(t, unknown.Valid())
	assert.Equal(t, 0, unknown.GuessDigits())
	assert.Equal(t, "kind(0)", unknown.String())
}

func TestParseGuess(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		g, err := ParseGuess(CombinedSignal, " 07 ")
		require.NoError(t, err)
		assert.Equal(t, CombinedSignal, g.Kind())
		assert.Equal(t, []int{0, 7}, g.Digits())
		assert.Equal(t, "07", g.String())
		assert.Equal(t, 7, g.Value())
		assert.False(t, g.IsZero())

		g, err = ParseGuess(RepeatingPattern, "112")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 2}, g.Digits())
	})

	t.Run("invalid format", func(t *testing.T) {
		cases := []struct {
			kind PredictionKind
			raw  string
		}{
			{SignalDigit, ""},
			{SignalDigit, "12"},
			{SignalDigit, "a"},
			{SignalDigit, "-1"},
			{CombinedSignal, "7"},
			{CombinedSignal, "1 2"},
			{UniquePattern, "12"},
			{UniquePattern, "1234"},
			{ConsensusPattern, "7.7"},
			{ConsensusPattern, "٣٣٣"},
		}
		for _, c := range cases {
			_, err := ParseGuess(c.kind, c.raw)
			assert.ErrorIs(t, err, ErrInvalidGuessFormat, "%s %q", c.kind, c.raw)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ParseGuess(PredictionKind(9), "1")
		assert.ErrorIs(t, err, ErrUnknownPredictionKind)
	})

	t.Run("digits are copied", func(t *testing.T) {
		g, err := ParseGuess(UniquePattern, "123")
		require.NoError(t, err)
		d := g.Digits()
		d[0] = 9
		assert.Equal(t, "123", g.String())
	})

	assert.True(t, Guess{}.IsZero())
}

func TestFeedAndDraw(t *testing.T) {
	f := NewFeed([3]int{2, 5, 8})
	assert.Equal(t, 5, f.Signal)
	assert.Equal(t, "258", f.DigitString())
	assert.Equal(t, "258*5", f.Result())

	zero := NewFeed([3]int{0, 0, 0})
	seven := NewFeed([3]int{3, 4, 0})
	d := Draw{Feed1: zero, Feed2: seven}
	assert.Equal(t, "07", d.CombinedSignal())
	assert.Equal(t, "000*0", zero.Result())
}

func TestSessionStateClone(t *testing.T) {
	s := SessionState{
		Streak:        3,
		RecentSignals: []string{"11"},
		History:       []HistoryEntry{{Guess: "5"}},
	}
	c := s.Clone()
	c.RecentSignals[0] = "99"
	c.History[0].Guess = "0"
	c.Streak = 0

	assert.Equal(t, "11", s.RecentSignals[0])
	assert.Equal(t, "5", s.History[0].Guess)
	assert.Equal(t, 3, s.Streak)
}
