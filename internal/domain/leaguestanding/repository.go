package leaguestanding

import "context"

// Source fetches and parses the standings page behind a league source URL.
type Source interface {
	FetchStandings(ctx context.Context, url string) (Page, error)
}
