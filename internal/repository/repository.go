package repository

import (
	"context"
	"oracle_predict/internal/model"
	statsModel "oracle_predict/internal/repository/stats_repo/model"
)

type SessionRepository interface {
	Create(ctx context.Context, state model.SessionState) (*model.Session, error)
	Get(ctx context.Context, id string) (*model.Session, error)
	// Update применяет fn к копии состояния и сохраняет копию, только если fn вернул nil
	Update(ctx context.Context, id string, fn func(state *model.SessionState) error) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

type StatsRepository interface {
	RTPState() statsModel.RTPState
	UpdateState(bet, payout float64)
}
