package league

import (
	"strings"
	"testing"
)

func testEntries() []League {
	return []League{
		{Key: "laliga", Aliases: []string{"laliga", "liga española", "primera division"}, SourceURL: "https://example.test/spain", DisplayName: "LaLiga"},
		{Key: "premier", Aliases: []string{"premier", "premier league", "liga inglesa"}, SourceURL: "https://example.test/england", DisplayName: "Premier League"},
		{Key: "bundesliga", Aliases: []string{"bundesliga", "bundes"}, SourceURL: "https://example.test/germany", DisplayName: "Bundesliga"},
		{Key: "ligue 1", Aliases: []string{"ligue 1", "liga francesa"}, SourceURL: "https://example.test/france", DisplayName: "Ligue 1"},
		{Key: "ligue 2", Aliases: []string{"ligue 2", "liga francesa"}, SourceURL: "https://example.test/france2", DisplayName: "Ligue 2"},
	}
}

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(testEntries())
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}
	return catalog
}

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t)
	tests := []struct {
		in      string
		wantKey string
		wantOK  bool
	}{
		{in: "premier liga", wantKey: "premier", wantOK: true},
		{in: "Premier League", wantKey: "premier", wantOK: true},
		{in: "  BUNDESLIGA ", wantKey: "bundesliga", wantOK: true},
		{in: "Liga Española", wantKey: "laliga", wantOK: true},
		{in: "liga espanola 2024", wantKey: "laliga", wantOK: true},
		{in: "Primera División", wantKey: "laliga", wantOK: true},
		{in: "liga francesa", wantKey: "ligue 1", wantOK: true},
		{in: "rugby union", wantOK: false},
		{in: "", wantOK: false},
		{in: "!!!", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := catalog.Resolve(tt.in)
		if ok != tt.wantOK {
			t.Fatalf("Resolve(%q) ok=%v want=%v", tt.in, ok, tt.wantOK)
		}
		if ok && got.Key != tt.wantKey {
			t.Fatalf("Resolve(%q)=%q want=%q", tt.in, got.Key, tt.wantKey)
		}
	}
}

func TestCatalogResolve_RegistrationOrderWins(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	entries[3], entries[4] = entries[4], entries[3]
	catalog, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}

	got, ok := catalog.Resolve("liga francesa")
	if !ok || got.Key != "ligue 2" {
		t.Fatalf("expected first registered entry, got key=%q ok=%v", got.Key, ok)
	}
}

func TestNewCatalog_RejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	dup := testEntries()
	dup = append(dup, League{Key: "premier", Aliases: []string{"epl"}, SourceURL: "https://example.test/epl", DisplayName: "EPL"})
	if _, err := NewCatalog(dup); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	noAlias := []League{{Key: "x", SourceURL: "https://example.test/x", DisplayName: "X"}}
	if _, err := NewCatalog(noAlias); err == nil {
		t.Fatalf("expected alias validation error")
	}

	noURL := []League{{Key: "x", Aliases: []string{"x"}, DisplayName: "X"}}
	if _, err := NewCatalog(noURL); err == nil {
		t.Fatalf("expected source url validation error")
	}
}

func TestCatalogReturnsIndependentAliases(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t)

	listed := catalog.List()
	listed[0].Aliases[0] = "mutated"
	listed[0].Aliases = append(listed[0].Aliases, "extra")

	got, _ := catalog.Get("laliga")
	got.Aliases[0] = "also mutated"

	resolved, ok := catalog.Resolve("laliga")
	if !ok {
		t.Fatalf("expected laliga to resolve")
	}
	resolved.Aliases[0] = "mutated again"

	fresh, _ := catalog.Get("laliga")
	if fresh.Aliases[0] != "laliga" {
		t.Fatalf("caller mutation leaked into catalog: %v", fresh.Aliases)
	}
	if len(fresh.Aliases) != len(catalog.List()[0].Aliases) {
		t.Fatalf("alias slices diverged: %v", fresh.Aliases)
	}
}

func TestCatalogListAndDisplayNames(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t)

	names := catalog.DisplayNames()
	want := []string{"LaLiga", "Premier League", "Bundesliga", "Ligue 1", "Ligue 2"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected display names: %v", names)
	}

	items := catalog.List()
	items[0].DisplayName = "mutated"
	if got, _ := catalog.Get("laliga"); got.DisplayName != "LaLiga" {
		t.Fatalf("List must return a copy, got %q", got.DisplayName)
	}

	if _, ok := catalog.Get("eredivisie"); ok {
		t.Fatalf("expected unknown key to be absent")
	}
}
