package stats_repo

import (
	repoModel "oracle_predict/internal/repository/stats_repo/model"
	"sync"
)

// defaultWindowSize размер окна последних раундов для расчета RTP
const defaultWindowSize = 500

// Хранилище статистики RTP в памяти процесса.
// В игровую логику не возвращается, используется только для метрик.
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.RTPState
}

// NewStatsRepository конструктор; windowSize <= 0 означает размер по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.RTPState{
			Window:     make([]repoModel.RoundResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// RTPState копия текущего состояния (окно копируется)
func (r *StatsRepo) RTPState() repoModel.RTPState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := r.state
	out.Window = append([]repoModel.RoundResult(nil), r.state.Window...)
	return out
}

// UpdateState учесть раунд
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	roundRTP := 0.0
	if bet > 0 {
		roundRTP = payout / bet * 100
	}
	r.state.Window = append(r.state.Window, repoModel.RoundResult{
		Bet:    bet,
		Payout: payout,
		RTP:    roundRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[len(r.state.Window)-r.state.WindowSize:]
	}

	var windowBet, windowPayout float64
	for _, round := range r.state.Window {
		windowBet += round.Bet
		windowPayout += round.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}
