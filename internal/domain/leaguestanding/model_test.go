package leaguestanding

import (
	"strings"
	"testing"
)

func TestPageLocateRow(t *testing.T) {
	t.Parallel()

	page := Page{Tables: []Table{{Rows: []string{"Team", "Barcelona", "Real Madrid", "Girona", "Atletico Madrid", "Athletic Club"}}}}

	pos, ok := page.LocateRow("Girona")
	if !ok || pos != 3 {
		t.Fatalf("expected position 3, got pos=%d ok=%v", pos, ok)
	}

	if _, ok := page.LocateRow("Team"); ok {
		t.Fatalf("header row must never match")
	}
	if _, ok := page.LocateRow("girona"); ok {
		t.Fatalf("lookup must be exact")
	}
}

func TestPageLocateRow_TableLocalNumbering(t *testing.T) {
	t.Parallel()

	page := Page{Tables: []Table{
		{Rows: []string{"", "Home", "Away"}},
		{Rows: []string{"Team", "Inter", "Napoli", "Milan"}},
	}}

	pos, ok := page.LocateRow("Napoli")
	if !ok || pos != 2 {
		t.Fatalf("expected table-local position 2, got pos=%d ok=%v", pos, ok)
	}

	pos, ok = page.LocateRow("Home")
	if !ok || pos != 1 {
		t.Fatalf("expected first table hit at 1, got pos=%d ok=%v", pos, ok)
	}
}

func TestPageLocateRow_FirstHitWins(t *testing.T) {
	t.Parallel()

	page := Page{Tables: []Table{
		{Rows: []string{"Team", "Lyon", "Lens"}},
		{Rows: []string{"Team", "Lens", "Lyon"}},
	}}

	pos, ok := page.LocateRow("Lens")
	if !ok || pos != 2 {
		t.Fatalf("expected first table position 2, got pos=%d ok=%v", pos, ok)
	}
}

func TestPageRoster(t *testing.T) {
	t.Parallel()

	page := Page{Tables: []Table{
		{Rows: []string{"Team", "Lyon", "", "Lens"}},
		{Rows: []string{"Team", "Lens", "Nice"}},
	}}

	got := strings.Join(page.Roster(), ",")
	if got != "Team,Lyon,Lens,Nice" {
		t.Fatalf("unexpected roster: %s", got)
	}

	if roster := (Page{}).Roster(); len(roster) != 0 {
		t.Fatalf("expected empty roster, got %v", roster)
	}
}
