package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/riskibarqy/matchday-predictor/internal/domain/league"
	"github.com/riskibarqy/matchday-predictor/internal/domain/leaguestanding"
)

const (
	testLaLigaURL  = "https://standings.test/latest.asp?league=spain"
	testPremierURL = "https://standings.test/latest.asp?league=england"
)

type stubLeagueRepo struct {
	catalog *league.Catalog
}

func newStubLeagueRepo(t *testing.T) stubLeagueRepo {
	t.Helper()

	catalog, err := league.NewCatalog([]league.League{
		{Key: "laliga", Aliases: []string{"laliga", "liga española", "primera division"}, SourceURL: testLaLigaURL, DisplayName: "LaLiga"},
		{Key: "premier", Aliases: []string{"premier", "premier league"}, SourceURL: testPremierURL, DisplayName: "Premier League"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return stubLeagueRepo{catalog: catalog}
}

func (r stubLeagueRepo) List(context.Context) ([]league.League, error) {
	return r.catalog.List(), nil
}

func (r stubLeagueRepo) GetByKey(_ context.Context, key string) (league.League, bool, error) {
	l, ok := r.catalog.Get(key)
	return l, ok, nil
}

func (r stubLeagueRepo) Resolve(_ context.Context, text string) (league.League, bool, error) {
	l, ok := r.catalog.Resolve(text)
	return l, ok, nil
}

type stubStandingsSource struct {
	mu    sync.Mutex
	pages map[string]leaguestanding.Page
	errs  map[string]error
	calls map[string]int
}

func newStubStandingsSource() *stubStandingsSource {
	return &stubStandingsSource{
		pages: make(map[string]leaguestanding.Page),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (s *stubStandingsSource) FetchStandings(_ context.Context, url string) (leaguestanding.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[url]++
	if err, ok := s.errs[url]; ok {
		return leaguestanding.Page{}, err
	}
	return s.pages[url], nil
}

func (s *stubStandingsSource) callCount(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}

func laLigaPage() leaguestanding.Page {
	return leaguestanding.Page{Tables: []leaguestanding.Table{{Rows: []string{
		"Team",
		"Real Madrid CF",
		"FC Barcelona",
		"Atletico Madrid",
		"Girona FC",
		"Athletic Club",
	}}}}
}
