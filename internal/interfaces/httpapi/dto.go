package httpapi

import (
	"github.com/riskibarqy/matchday-predictor/internal/domain/league"
	"github.com/riskibarqy/matchday-predictor/internal/domain/position"
)

type leagueDTO struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Aliases     []string `json:"aliases"`
	SourceURL   string   `json:"source_url"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		Key:         l.Key,
		DisplayName: l.DisplayName,
		Aliases:     l.Aliases,
		SourceURL:   l.SourceURL,
	}
}

type positionBatchRequest struct {
	Lookups []position.Lookup `json:"lookups" validate:"required,min=1,dive"`
}

type analysisRequest struct {
	League   string `json:"league" validate:"required,max=120"`
	HomeTeam string `json:"home_team" validate:"required,max=120"`
	AwayTeam string `json:"away_team" validate:"required,max=120"`
}
