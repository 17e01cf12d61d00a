package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday-predictor/internal/domain/league"
	"github.com/riskibarqy/matchday-predictor/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday-predictor/internal/domain/position"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchday-predictor/internal/platform/textmatch"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultBatchWorkers = 4
	defaultBatchMax     = 20
)

type PositionServiceConfig struct {
	BatchWorkers int
	BatchMax     int
}

type PositionService struct {
	leagueRepo league.Repository
	source     leaguestanding.Source
	cfg        PositionServiceConfig
	logger     *logging.Logger
}

func NewPositionService(
	leagueRepo league.Repository,
	source leaguestanding.Source,
	cfg PositionServiceConfig,
	logger *logging.Logger,
) *PositionService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}
	if cfg.BatchMax <= 0 {
		cfg.BatchMax = defaultBatchMax
	}

	return &PositionService{
		leagueRepo: leagueRepo,
		source:     source,
		cfg:        cfg,
		logger:     logger,
	}
}

// ResolvePosition maps free-text league and team names to the team's current
// table position. Failures are reported through the outcome kind, never as a
// Go error.
func (s *PositionService) ResolvePosition(ctx context.Context, leagueText, teamText string) position.Outcome {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.ResolvePosition")
	defer span.End()

	out := position.Outcome{League: leagueText, Team: teamText}

	if textmatch.Normalize(leagueText) == "" {
		return s.unsupported(ctx, out)
	}

	lg, ok, err := s.leagueRepo.Resolve(ctx, leagueText)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve league failed", "league", leagueText, "error", err)
		out.Kind = position.KindUpstreamError
		out.Message = fmt.Sprintf("error looking up team: %v", err)
		return out
	}
	if !ok {
		return s.unsupported(ctx, out)
	}
	out.League = lg.DisplayName
	span.SetAttributes(attribute.String("league.key", lg.Key))

	if textmatch.Normalize(teamText) == "" {
		out.Kind = position.KindTeamNotFound
		out.Message = fmt.Sprintf("team not found in %s", lg.DisplayName)
		return out
	}

	page, err := s.source.FetchStandings(ctx, lg.SourceURL)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch standings failed",
			"league", lg.Key,
			"team", teamText,
			"url", lg.SourceURL,
			"error", err,
		)
		if errors.Is(err, ErrUpstreamTimeout) {
			out.Kind = position.KindUpstreamTimeout
			out.Message = "upstream timed out, please try again"
			return out
		}
		out.Kind = position.KindUpstreamError
		out.Message = fmt.Sprintf("error looking up team: %v", err)
		return out
	}

	match := textmatch.BestMatch(teamText, page.Roster())
	if !match.Found {
		out.Kind = position.KindTeamNotFound
		out.Message = fmt.Sprintf("team not found in %s", lg.DisplayName)
		return out
	}
	out.MatchedTeam = match.Candidate

	pos, ok := page.LocateRow(match.Candidate)
	if !ok {
		s.logger.WarnContext(ctx, "matched team has no table row",
			"league", lg.Key,
			"team", teamText,
			"matched_team", match.Candidate,
		)
		out.Kind = position.KindUpstreamError
		out.Message = fmt.Sprintf("error looking up team: %s is not listed in the %s table", match.Candidate, lg.DisplayName)
		return out
	}

	out.Kind = position.KindResolved
	out.Position = pos
	return out
}

// ResolveBatch resolves every lookup on a bounded worker pool. Outcomes keep
// the order of lookups.
func (s *PositionService) ResolveBatch(ctx context.Context, lookups []position.Lookup) ([]position.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.ResolveBatch")
	defer span.End()

	if len(lookups) == 0 {
		return nil, fmt.Errorf("%w: at least one lookup is required", ErrInvalidInput)
	}
	if len(lookups) > s.cfg.BatchMax {
		return nil, fmt.Errorf("%w: at most %d lookups are allowed", ErrInvalidInput, s.cfg.BatchMax)
	}

	workerCount := s.cfg.BatchWorkers
	if workerCount > len(lookups) {
		workerCount = len(lookups)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]position.Outcome, len(lookups))

	var workers sync.WaitGroup
	for i, lookup := range lookups {
		i, lookup := i, lookup
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.ResolvePosition(ctx, lookup.League, lookup.Team)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	return out, nil
}

func (s *PositionService) unsupported(ctx context.Context, out position.Outcome) position.Outcome {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "list leagues failed", "error", err)
	}

	names := make([]string, 0, len(leagues))
	for _, lg := range leagues {
		names = append(names, lg.DisplayName)
	}

	out.Kind = position.KindUnsupportedLeague
	out.Message = fmt.Sprintf("league not supported. Supported leagues: %s", strings.Join(names, ", "))
	return out
}

// OutcomeError converts a non-resolved outcome into its sentinel error. A
// resolved outcome yields nil.
func OutcomeError(o position.Outcome) error {
	switch o.Kind {
	case position.KindResolved:
		if o.Position > 0 {
			return nil
		}
		return fmt.Errorf("%w: %s has no position", ErrUpstreamUnavailable, o.Team)
	case position.KindUnsupportedLeague:
		return fmt.Errorf("%w: %s", ErrUnsupportedLeague, o.Message)
	case position.KindTeamNotFound:
		return fmt.Errorf("%w: %s", ErrTeamNotFound, o.Message)
	case position.KindUpstreamTimeout:
		return fmt.Errorf("%w: %s", ErrUpstreamTimeout, o.Message)
	default:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, o.Message)
	}
}
