package memory

import "github.com/riskibarqy/matchday-predictor/internal/domain/league"

const (
	LeagueKeyLaLiga          = "laliga"
	LeagueKeyPremier         = "premier"
	LeagueKeySerieA          = "serie a"
	LeagueKeyBundesliga      = "bundesliga"
	LeagueKeyLigue1          = "ligue 1"
	LeagueKeyLigue2          = "ligue 2"
	LeagueKeyPrimeraA        = "primera a"
	LeagueKeyLigaProfesional = "liga profesional"
	LeagueKeyChampions       = "champions"
)

const soccerStatsLatest = "https://www.soccerstats.com/latest.asp?league="

// SeedLeagues returns the supported leagues in resolution order. Earlier
// entries win when aliases overlap ("liga francesa" resolves to Ligue 1).
func SeedLeagues() []league.League {
	return []league.League{
		{
			Key:         LeagueKeyLaLiga,
			Aliases:     []string{"laliga", "liga española", "liga espanola", "primera division", "liga santander"},
			SourceURL:   soccerStatsLatest + "spain",
			DisplayName: "LaLiga",
		},
		{
			Key:         LeagueKeyPremier,
			Aliases:     []string{"premier", "premier league", "liga inglesa", "premier liga"},
			SourceURL:   soccerStatsLatest + "england",
			DisplayName: "Premier League",
		},
		{
			Key:         LeagueKeySerieA,
			Aliases:     []string{"serie a", "seria a", "liga italiana", "calcio"},
			SourceURL:   soccerStatsLatest + "italy",
			DisplayName: "Serie A",
		},
		{
			Key:         LeagueKeyBundesliga,
			Aliases:     []string{"bundesliga", "liga alemana", "bundes"},
			SourceURL:   soccerStatsLatest + "germany",
			DisplayName: "Bundesliga",
		},
		{
			Key:         LeagueKeyLigue1,
			Aliases:     []string{"ligue 1", "liga francesa", "lig 1", "ligue one"},
			SourceURL:   soccerStatsLatest + "france",
			DisplayName: "Ligue 1",
		},
		{
			Key:         LeagueKeyLigue2,
			Aliases:     []string{"ligue 2", "liga francesa", "lig 2", "ligue two"},
			SourceURL:   soccerStatsLatest + "france2",
			DisplayName: "Ligue 2",
		},
		{
			Key:         LeagueKeyPrimeraA,
			Aliases:     []string{"primera a"},
			SourceURL:   soccerStatsLatest + "colombia",
			DisplayName: "Primera A",
		},
		{
			Key:         LeagueKeyLigaProfesional,
			Aliases:     []string{"liga profesional"},
			SourceURL:   soccerStatsLatest + "argentina",
			DisplayName: "Liga Profesional",
		},
		{
			Key:         LeagueKeyChampions,
			Aliases:     []string{"Champions league", "champion leeague", "liga de campeones", "champions league"},
			SourceURL:   "https://www.soccerstats.com/leagueview.asp?league=cleague",
			DisplayName: "Champions league",
		},
	}
}
