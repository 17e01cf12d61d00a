package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday-predictor/external/groq"
	"github.com/riskibarqy/matchday-predictor/external/soccerstats"
	"github.com/riskibarqy/matchday-predictor/internal/config"
	"github.com/riskibarqy/matchday-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchday-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday-predictor/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/matchday-predictor/internal/platform/id"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchday-predictor/internal/platform/resilience"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
)

// Services holds the wired usecases shared by the HTTP server and the CLI.
type Services struct {
	Leagues   *usecase.LeagueService
	Positions *usecase.PositionService
	Analyses  *usecase.AnalysisService
}

func NewServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	leagueRepo, err := memory.NewLeagueRepository(memory.SeedLeagues())
	if err != nil {
		return nil, fmt.Errorf("build league catalog: %w", err)
	}

	standings := soccerstats.NewClient(soccerstats.ClientConfig{
		Timeout:      cfg.ScraperTimeout,
		MaxBodyBytes: cfg.ScraperMaxBodyBytes,
		Logger:       logger,
	})

	positionSvc := usecase.NewPositionService(
		leagueRepo,
		standings,
		usecase.PositionServiceConfig{
			BatchWorkers: cfg.PositionBatchWorkers,
			BatchMax:     cfg.PositionBatchMax,
		},
		logger,
	)

	var predictor prediction.Predictor = groq.Disabled{}
	if cfg.GroqEnabled {
		predictor = groq.NewClient(groq.ClientConfig{
			BaseURL:     cfg.GroqBaseURL,
			APIKey:      cfg.GroqAPIKey,
			Model:       cfg.GroqModel,
			Temperature: &cfg.GroqTemperature,
			MaxTokens:   cfg.GroqMaxTokens,
			Timeout:     cfg.GroqTimeout,
			Logger:      logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.GroqCircuitEnabled,
				FailureThreshold: cfg.GroqCircuitFailureCount,
				OpenTimeout:      cfg.GroqCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.GroqCircuitHalfOpenMaxReq,
			},
		})
	} else {
		logger.Info("prediction composer disabled", "reason", "GROQ_ENABLED=false")
	}

	return &Services{
		Leagues:   usecase.NewLeagueService(leagueRepo),
		Positions: positionSvc,
		Analyses:  usecase.NewAnalysisService(positionSvc, predictor, idgen.NewRandomGenerator(), logger),
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		services.Leagues,
		services.Positions,
		services.Analyses,
		cfg.PositionBatchMax,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit: httpapi.RateLimitConfig{
			Enabled:           cfg.RateLimitEnabled,
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
			TrustProxy:        cfg.RateLimitTrustProxy,
		},
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
