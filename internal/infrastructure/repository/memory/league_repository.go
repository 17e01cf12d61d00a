package memory

import (
	"context"

	"github.com/riskibarqy/matchday-predictor/internal/domain/league"
)

// LeagueRepository serves the static league catalog. The catalog never
// changes after construction, so reads need no locking.
type LeagueRepository struct {
	catalog *league.Catalog
}

func NewLeagueRepository(leagues []league.League) (*LeagueRepository, error) {
	catalog, err := league.NewCatalog(leagues)
	if err != nil {
		return nil, err
	}

	return &LeagueRepository{catalog: catalog}, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	return r.catalog.List(), nil
}

func (r *LeagueRepository) GetByKey(_ context.Context, key string) (league.League, bool, error) {
	l, ok := r.catalog.Get(key)
	return l, ok, nil
}

func (r *LeagueRepository) Resolve(_ context.Context, text string) (league.League, bool, error) {
	l, ok := r.catalog.Resolve(text)
	return l, ok, nil
}
