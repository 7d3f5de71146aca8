package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/openpitch/statsbomb-api/external/statsbomb"
	"github.com/openpitch/statsbomb-api/internal/config"
	"github.com/openpitch/statsbomb-api/internal/domain/competition"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/domain/stats"
	"github.com/openpitch/statsbomb-api/internal/infrastructure/repository/memory"
	"github.com/openpitch/statsbomb-api/internal/infrastructure/repository/postgres"
	"github.com/openpitch/statsbomb-api/internal/interfaces/httpapi"
	"github.com/openpitch/statsbomb-api/internal/platform/cache"
	"github.com/openpitch/statsbomb-api/internal/platform/logging"
	"github.com/openpitch/statsbomb-api/internal/platform/resilience"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

// App holds the wired service graph shared by the api and updater binaries.
type App struct {
	Server        *http.Server
	UpdateService *usecase.UpdateService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	mapping := competition.NewMapping(cfg.CompetitionIDByCode, competition.DefaultCountryByID())

	client := statsbomb.NewClient(statsbomb.ClientConfig{
		BaseURL:    cfg.StatsBombBaseURL,
		Timeout:    cfg.StatsBombTimeout,
		MaxRetries: cfg.StatsBombMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsBombCircuitEnabled,
			FailureThreshold: cfg.StatsBombCircuitFailures,
			OpenTimeout:      cfg.StatsBombCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsBombCircuitHalfOpen,
		},
	})

	var (
		db              *sqlx.DB
		matchRepo       match.Repository
		playerStatsRepo stats.PlayerRepository
		teamStatsRepo   stats.TeamRepository
		competitionRepo competition.Repository
	)
	if cfg.DBURL != "" {
		opened, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
		matchRepo = postgres.NewMatchRepository(db)
		playerStatsRepo = postgres.NewPlayerStatsRepository(db)
		teamStatsRepo = postgres.NewTeamStatsRepository(db)
		competitionRepo = postgres.NewCompetitionRepository(db)
		logger.Info("storage configured", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		matchRepo = memory.NewMatchRepository()
		playerStatsRepo = memory.NewPlayerStatsRepository()
		teamStatsRepo = memory.NewTeamStatsRepository()
		competitionRepo = memory.NewCompetitionRepository()
		logger.Info("storage configured", "backend", "memory")
	}

	store := cache.NewStore(cfg.CacheTTL)

	matchSvc := usecase.NewMatchService(client, mapping, store)
	statsSvc := usecase.NewStatsService(client, store)
	updateSvc := usecase.NewUpdateService(
		client,
		mapping,
		matchRepo,
		playerStatsRepo,
		teamStatsRepo,
		competitionRepo,
		logger,
		usecase.UpdateServiceConfig{
			SeasonsPerCompetition: cfg.UpdateSeasonsPerCompetition,
			MaxWorkers:            cfg.UpdateMaxWorkers,
		},
	)

	handler := httpapi.NewHandler(matchSvc, statsSvc, updateSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:        server,
		UpdateService: updateSvc,
		db:            db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
