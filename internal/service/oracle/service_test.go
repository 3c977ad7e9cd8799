package oracle

import (
	"context"
	"oracle_predict/internal/model"
	"oracle_predict/internal/repository/session_repo"
	"oracle_predict/internal/repository/stats_repo"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(src RandomSource) (*serv, *stats_repo.StatsRepo) {
	statsRepo := stats_repo.NewStatsRepository(10)
	s := NewOracleService(NewEngine(src), session_repo.NewSessionRepository(time.Hour, 0), statsRepo)
	return s.(*serv), statsRepo
}

func TestService_PredictFlow(t *testing.T) {
	ctx := context.Background()
	s, statsRepo := newTestService(newFixedSource(nil, 2, 5, 8, 1, 1, 1, 0, 0, 0, 0, 0, 0))

	sess, err := s.NewSession(ctx)
	require.NoError(t, err)
	assertDecimal(t, "10000", sess.State.Balance)

	res, after, err := s.Predict(ctx, sess.ID, model.Prediction{Kind: model.SignalDigit, Guess: "5", Bet: dec("100")})
	require.NoError(t, err)
	assert.True(t, res.Won)
	assertDecimal(t, "10900", after.State.Balance)

	res, _, err = s.Predict(ctx, sess.ID, model.Prediction{Kind: model.CombinedSignal, Guess: "00", Bet: dec("100")})
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 2, res.NewStreak)

	history, err := s.History(ctx, sess.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	last, err := s.History(ctx, sess.ID, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "00", last[0].Guess)

	rtp := statsRepo.RTPState()
	assert.Equal(t, 2, rtp.TotalRounds)
	assert.InDelta(t, 200.0, rtp.TotalBet, 1e-9)
}

func TestService_PredictRejected(t *testing.T) {
	ctx := context.Background()
	s, statsRepo := newTestService(newFixedSource(nil))

	sess, err := s.NewSession(ctx)
	require.NoError(t, err)

	_, _, err = s.Predict(ctx, sess.ID, model.Prediction{Kind: model.CombinedSignal, Guess: "7", Bet: dec("100")})
	assert.ErrorIs(t, err, model.ErrInvalidGuessFormat)

	_, _, err = s.Predict(ctx, sess.ID, model.Prediction{Kind: model.SignalDigit, Guess: "7", Bet: dec("20000")})
	assert.ErrorIs(t, err, model.ErrInvalidBetAmount)

	got, err := s.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.State, got.State)
	assert.Equal(t, 0, statsRepo.RTPState().TotalRounds)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(newFixedSource(nil, 1, 2, 3, 4, 5, 6))

	sess, err := s.NewSession(ctx)
	require.NoError(t, err)
	_, _, err = s.Predict(ctx, sess.ID, model.Prediction{Kind: model.SignalDigit, Guess: "0", Bet: dec("500")})
	require.NoError(t, err)

	reset, err := s.Reset(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, reset.ID)
	assert.Equal(t, ResetSession(), reset.State)
}

func TestService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(newFixedSource(nil))

	_, err := s.Session(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, _, err = s.Predict(ctx, "missing", model.Prediction{Kind: model.SignalDigit, Guess: "1", Bet: dec("10")})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = s.History(ctx, "missing", 5)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestService_Market(t *testing.T) {
	s, _ := newTestService(newFixedSource(nil))

	m := s.Market(utc(10, 57, 30))
	assert.True(t, m.Open)
	assert.Equal(t, labelMarketOpen, m.Label)
	assert.Equal(t, 10*3600+2*60+30, m.SecondsUntilChange)
	assert.Equal(t, 150, m.SecondsToNextDraw)
}
