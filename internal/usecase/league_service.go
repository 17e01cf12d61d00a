package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday-predictor/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, key string) (league.League, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return league.League{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByKey(ctx, key)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, key)
	}

	return item, nil
}

// ResolveLeague maps free text onto a supported league.
func (s *LeagueService) ResolveLeague(ctx context.Context, text string) (league.League, error) {
	if strings.TrimSpace(text) == "" {
		return league.League{}, fmt.Errorf("%w: league query is required", ErrInvalidInput)
	}

	item, ok, err := s.leagueRepo.Resolve(ctx, text)
	if err != nil {
		return league.League{}, fmt.Errorf("resolve league: %w", err)
	}
	if ok {
		return item, nil
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return league.League{}, fmt.Errorf("list leagues: %w", err)
	}
	names := make([]string, 0, len(leagues))
	for _, lg := range leagues {
		names = append(names, lg.DisplayName)
	}

	return league.League{}, fmt.Errorf("%w: league not supported. Supported leagues: %s", ErrUnsupportedLeague, strings.Join(names, ", "))
}
