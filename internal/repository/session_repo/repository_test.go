package session_repo

import (
	"context"
	"errors"
	"oracle_predict/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRepo(ttl time.Duration, max int) (*repo, *clock) {
	c := &clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return newRepo(ttl, max, c.Now), c
}

func state(balance int64) model.SessionState {
	return model.SessionState{
		Balance:       decimal.NewFromInt(balance),
		Jackpot:       decimal.NewFromInt(5000),
		RecentSignals: []string{},
		History:       []model.HistoryEntry{},
	}
}

func TestRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour, 0)

	sess, err := r.Create(ctx, state(100))
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, r.Count())

	got, err := r.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.State.Balance.Equal(decimal.NewFromInt(100)))

	got.State.RecentSignals = append(got.State.RecentSignals, "leak")
	again, err := r.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, again.State.RecentSignals)

	_, err = r.Get(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRepo_UpdateRollback(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour, 0)

	sess, err := r.Create(ctx, state(100))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = r.Update(ctx, sess.ID, func(s *model.SessionState) error {
		s.Balance = decimal.Zero
		s.Streak = 7
		s.History = append(s.History, model.HistoryEntry{Guess: "1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := r.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.State.Balance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 0, got.State.Streak)
	assert.Empty(t, got.State.History)

	updated, err := r.Update(ctx, sess.ID, func(s *model.SessionState) error {
		s.Streak = 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.State.Streak)

	got, err = r.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.State.Streak)
}

func TestRepo_TTL(t *testing.T) {
	ctx := context.Background()
	r, c := newTestRepo(time.Minute, 0)

	sess, err := r.Create(ctx, state(100))
	require.NoError(t, err)

	c.Advance(50 * time.Second)
	_, err = r.Get(ctx, sess.ID)
	require.NoError(t, err)

	// Обращение продлевает жизнь сессии
	c.Advance(50 * time.Second)
	_, err = r.Get(ctx, sess.ID)
	require.NoError(t, err)

	c.Advance(61 * time.Second)
	_, err = r.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Equal(t, 0, r.Count())
}

func TestRepo_EvictsLeastRecentlySeen(t *testing.T) {
	ctx := context.Background()
	r, c := newTestRepo(0, 2)

	first, err := r.Create(ctx, state(1))
	require.NoError(t, err)
	c.Advance(time.Second)
	second, err := r.Create(ctx, state(2))
	require.NoError(t, err)
	c.Advance(time.Second)

	_, err = r.Get(ctx, first.ID)
	require.NoError(t, err)
	c.Advance(time.Second)

	third, err := r.Create(ctx, state(3))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count())

	_, err = r.Get(ctx, second.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = r.Get(ctx, first.ID)
	assert.NoError(t, err)
	_, err = r.Get(ctx, third.ID)
	assert.NoError(t, err)
}

func TestRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(0, 0)

	sess, err := r.Create(ctx, state(1))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, sess.ID))
	require.NoError(t, r.Delete(ctx, sess.ID))
	_, err = r.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, _ := newTestRepo(0, 0)

	_, err := r.Create(ctx, state(1))
	assert.ErrorIs(t, err, context.Canceled)
}
