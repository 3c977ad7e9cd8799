package service

import (
	"context"
	"oracle_predict/internal/model"
	"time"
)

type OracleService interface {
	NewSession(ctx context.Context) (*model.Session, error)
	Session(ctx context.Context, sessionID string) (*model.Session, error)
	Reset(ctx context.Context, sessionID string) (*model.Session, error)
	Predict(ctx context.Context, sessionID string, req model.Prediction) (*model.RoundResult, *model.Session, error)
	History(ctx context.Context, sessionID string, limit int) ([]model.HistoryEntry, error)

	Market(now time.Time) model.MarketStatus
	Rules() model.Rules
}
