package memory

import (
	"context"
	"testing"
)

func TestLeagueRepository_SeedCatalog(t *testing.T) {
	t.Parallel()

	repo, err := NewLeagueRepository(SeedLeagues())
	if err != nil {
		t.Fatalf("NewLeagueRepository error: %v", err)
	}

	ctx := context.Background()
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 9 {
		t.Fatalf("expected 9 leagues, got=%d", len(items))
	}
	if items[0].Key != LeagueKeyLaLiga || items[8].Key != LeagueKeyChampions {
		t.Fatalf("unexpected catalog order: first=%s last=%s", items[0].Key, items[8].Key)
	}

	tests := []struct {
		in      string
		wantKey string
	}{
		{in: "premier liga", wantKey: LeagueKeyPremier},
		{in: "Liga Española", wantKey: LeagueKeyLaLiga},
		{in: "calcio", wantKey: LeagueKeySerieA},
		{in: "Liga Francesa", wantKey: LeagueKeyLigue1},
		{in: "ligue 2", wantKey: LeagueKeyLigue2},
		{in: "Primera A", wantKey: LeagueKeyPrimeraA},
		{in: "Liga de Campeones", wantKey: LeagueKeyChampions},
		{in: "CHAMPIONS LEAGUE", wantKey: LeagueKeyChampions},
	}
	for _, tt := range tests {
		got, ok, err := repo.Resolve(ctx, tt.in)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tt.in, err)
		}
		if !ok || got.Key != tt.wantKey {
			t.Fatalf("Resolve(%q)=%q ok=%v want=%q", tt.in, got.Key, ok, tt.wantKey)
		}
	}

	if _, ok, _ := repo.Resolve(ctx, "rugby union"); ok {
		t.Fatalf("expected rugby union to be unsupported")
	}

	got, ok, err := repo.GetByKey(ctx, LeagueKeyBundesliga)
	if err != nil || !ok {
		t.Fatalf("GetByKey error=%v ok=%v", err, ok)
	}
	if got.SourceURL != "https://www.soccerstats.com/latest.asp?league=germany" {
		t.Fatalf("unexpected source url: %s", got.SourceURL)
	}
}
