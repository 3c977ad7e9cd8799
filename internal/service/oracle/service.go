package oracle

import (
	"oracle_predict/internal/repository"
	"oracle_predict/internal/service"
)

type serv struct {
	engine    *Engine
	repo      repository.SessionRepository
	statsRepo repository.StatsRepository
}

// NewOracleService сервис раундов поверх движка правил и хранилища сессий
func NewOracleService(
	engine *Engine,
	repo repository.SessionRepository,
	statsRepo repository.StatsRepository,
) service.OracleService {
	return &serv{
		engine:    engine,
		repo:      repo,
		statsRepo: statsRepo,
	}
}
