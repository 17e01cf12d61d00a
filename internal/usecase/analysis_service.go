package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-predictor/internal/domain/position"
	"github.com/riskibarqy/matchday-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchday-predictor/internal/platform/id"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type AnalyzeInput struct {
	League   string
	HomeTeam string
	AwayTeam string
}

type AnalysisService struct {
	positions *PositionService
	predictor prediction.Predictor
	idGen     id.Generator
	now       func() time.Time
	logger    *logging.Logger
}

func NewAnalysisService(
	positions *PositionService,
	predictor prediction.Predictor,
	idGen id.Generator,
	logger *logging.Logger,
) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}

	return &AnalysisService{
		positions: positions,
		predictor: predictor,
		idGen:     idGen,
		now:       time.Now,
		logger:    logger,
	}
}

// Analyze resolves both teams concurrently and asks the predictor for a
// forecast only when both positions are known.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (prediction.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Analyze")
	defer span.End()

	league := strings.TrimSpace(input.League)
	homeTeam := strings.TrimSpace(input.HomeTeam)
	awayTeam := strings.TrimSpace(input.AwayTeam)
	if league == "" || homeTeam == "" || awayTeam == "" {
		return prediction.Analysis{}, fmt.Errorf("%w: league and team names are required", ErrInvalidInput)
	}

	var home, away position.Outcome
	var wg conc.WaitGroup
	wg.Go(func() {
		home = s.positions.ResolvePosition(ctx, league, homeTeam)
	})
	wg.Go(func() {
		away = s.positions.ResolvePosition(ctx, league, awayTeam)
	})
	wg.Wait()

	if err := OutcomeError(home); err != nil {
		return prediction.Analysis{}, err
	}
	if err := OutcomeError(away); err != nil {
		return prediction.Analysis{}, err
	}

	s.logger.InfoContext(ctx, "analyzing fixture",
		"league", home.League,
		"home_team", homeTeam,
		"home_position", home.Position,
		"away_team", awayTeam,
		"away_position", away.Position,
	)

	content, err := s.predictor.Predict(ctx, prediction.Fixture{
		League:       home.League,
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		HomePosition: home.Position,
		AwayPosition: away.Position,
	})
	if err != nil {
		return prediction.Analysis{}, fmt.Errorf("predict fixture: %w", err)
	}

	analysisID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Analysis{}, fmt.Errorf("generate analysis id: %w", err)
	}

	now := s.now().UTC()
	return prediction.Analysis{
		ID:         analysisID,
		League:     home.League,
		Home:       home,
		Away:       away,
		Prediction: content,
		Snapshot: prediction.Snapshot{
			Timestamp: now,
			Content:   content,
			Details: prediction.Details{
				League:   league,
				HomeTeam: homeTeam,
				AwayTeam: awayTeam,
			},
		},
		CreatedAt: now,
	}, nil
}
