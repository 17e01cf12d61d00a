package position

// Kind classifies the result of a single team position lookup.
type Kind string

const (
	KindResolved          Kind = "resolved"
	KindUnsupportedLeague Kind = "unsupported_league"
	KindTeamNotFound      Kind = "team_not_found"
	KindUpstreamTimeout   Kind = "upstream_timeout"
	KindUpstreamError     Kind = "upstream_error"
)

// Outcome is the answer for one (league, team) lookup. Position is 1-based
// and only set when Kind is KindResolved; every other kind carries Message.
type Outcome struct {
	League      string `json:"league"`
	Team        string `json:"team"`
	MatchedTeam string `json:"matched_team,omitempty"`
	Position    int    `json:"position,omitempty"`
	Kind        Kind   `json:"kind"`
	Message     string `json:"message,omitempty"`
}

func (o Outcome) Resolved() bool {
	return o.Kind == KindResolved && o.Position > 0
}

// Lookup is one requested (league, team) pair.
type Lookup struct {
	League string `json:"league" validate:"required,max=120"`
	Team   string `json:"team" validate:"required,max=120"`
}
