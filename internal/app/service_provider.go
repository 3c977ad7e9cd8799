package app

import (
	"context"
	oracleAPI "oracle_predict/internal/api/oracle"
	"oracle_predict/internal/config"
	"oracle_predict/internal/config/env"
	"oracle_predict/internal/metrics"
	"oracle_predict/internal/middleware"
	"oracle_predict/internal/repository"
	"oracle_predict/internal/repository/session_repo"
	"oracle_predict/internal/repository/stats_repo"
	"oracle_predict/internal/service"
	"oracle_predict/internal/service/oracle"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	// Configs
	httpCfg    config.HTTPConfig
	sessionCfg config.SessionConfig
	loggerCfg  config.LoggerConfig
	serverCfg  config.ServerConfig

	// Oracle bits
	randomSource oracle.RandomSource
	engine       *oracle.Engine
	sessionRepo  repository.SessionRepository
	statsRepo    repository.StatsRepository
	oracleServ   service.OracleService
	oracleHand   *oracleAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) ServerCfg() config.ServerConfig {
	if sp.serverCfg == nil {
		cfg, err := env.NewServerConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get server config: " + err.Error())
		}
		sp.serverCfg = cfg
	}
	return sp.serverCfg
}

func (sp *ServiceProvider) RandomSource() oracle.RandomSource {
	if sp.randomSource == nil {
		src, err := oracle.NewRandomSource()
		if err != nil {
			panic("failed to seed random source: " + err.Error())
		}
		sp.randomSource = src
	}
	return sp.randomSource
}

func (sp *ServiceProvider) Engine() *oracle.Engine {
	if sp.engine == nil {
		sp.engine = oracle.NewEngine(sp.RandomSource())
	}
	return sp.engine
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.SessionCfg().TTL(), sp.ServerCfg().MaxSessions())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.ServerCfg().StatsWindowSize())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) OracleService() service.OracleService {
	if sp.oracleServ == nil {
		sp.oracleServ = oracle.NewOracleService(sp.Engine(), sp.SessionRepository(), sp.StatsRepository())
	}
	return sp.oracleServ
}

func (sp *ServiceProvider) OracleHandler() *oracleAPI.Handler {
	if sp.oracleHand == nil {
		sp.oracleHand = oracleAPI.NewHandler(oracleAPI.HandlerDeps{
			Serv:       sp.OracleService(),
			SessionCfg: sp.SessionCfg(),
		})
	}
	return sp.oracleHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.ServerCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeaderName},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(metrics.InstrumentHandler)
		r.Use(middleware.Session(sp.SessionCfg().TokenSecretKey()))

		oracleHandler := sp.OracleHandler()

		// Session endpoints
		r.Post("/session", oracleHandler.CreateSession)
		r.Get("/session", middleware.RequireSession(oracleHandler.GetSession))
		r.Post("/session/reset", middleware.RequireSession(oracleHandler.ResetSession))

		// Game endpoints
		r.Post("/predict", middleware.RequireSession(oracleHandler.Predict))
		r.Get("/history", middleware.RequireSession(oracleHandler.History))

		// Public endpoints
		r.Get("/market", oracleHandler.Market)
		r.Get("/rules", oracleHandler.Rules)
		r.Handle("/metrics", metrics.Handler())

		sp.router = r
	}

	return sp.router
}
