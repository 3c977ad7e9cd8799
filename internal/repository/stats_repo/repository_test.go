package stats_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRepo_UpdateState(t *testing.T) {
	r := NewStatsRepository(2)

	r.UpdateState(100, 0)
	r.UpdateState(100, 1000)
	r.UpdateState(200, 100)

	st := r.RTPState()
	assert.Equal(t, 3, st.TotalRounds)
	assert.InDelta(t, 400.0, st.TotalBet, 1e-9)
	assert.InDelta(t, 1100.0, st.TotalPayout, 1e-9)
	assert.InDelta(t, 275.0, st.CurrentRTP, 1e-9)

	assert.Len(t, st.Window, 2)
	assert.InDelta(t, 1100.0/300.0*100, st.WindowRTP, 1e-9)
	assert.InDelta(t, 50.0, st.Window[1].RTP, 1e-9)
}

func TestStatsRepo_DefaultWindowAndCopy(t *testing.T) {
	r := NewStatsRepository(0)
	assert.Equal(t, defaultWindowSize, r.RTPState().WindowSize)

	r.UpdateState(10, 20)
	st := r.RTPState()
	st.Window[0].Bet = 999

	assert.InDelta(t, 10.0, r.RTPState().Window[0].Bet, 1e-9)
}
