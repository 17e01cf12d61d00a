package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLeagueService_ResolveLeague(t *testing.T) {
	t.Parallel()

	svc := NewLeagueService(newStubLeagueRepo(t))

	got, err := svc.ResolveLeague(context.Background(), "Premier League")
	if err != nil {
		t.Fatalf("ResolveLeague error: %v", err)
	}
	if got.Key != "premier" {
		t.Fatalf("unexpected league: %s", got.Key)
	}

	_, err = svc.ResolveLeague(context.Background(), "rugby union")
	if !errors.Is(err, ErrUnsupportedLeague) {
		t.Fatalf("expected ErrUnsupportedLeague, got %v", err)
	}
	if !strings.Contains(err.Error(), "Supported leagues: LaLiga, Premier League") {
		t.Fatalf("expected supported league list, got %q", err.Error())
	}

	if _, err := svc.ResolveLeague(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeagueService_GetLeague(t *testing.T) {
	t.Parallel()

	svc := NewLeagueService(newStubLeagueRepo(t))

	if _, err := svc.GetLeague(context.Background(), "laliga"); err != nil {
		t.Fatalf("GetLeague error: %v", err)
	}
	if _, err := svc.GetLeague(context.Background(), "eredivisie"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := svc.ListLeagues(context.Background())
	if err != nil || len(items) != 2 {
		t.Fatalf("ListLeagues: items=%d err=%v", len(items), err)
	}
}
