package prediction

import (
	"time"

	"github.com/riskibarqy/matchday-predictor/internal/domain/position"
)

// Fixture is the resolved context handed to a Predictor.
type Fixture struct {
	League       string
	HomeTeam     string
	AwayTeam     string
	HomePosition int
	AwayPosition int
}

// Details echoes the user's input inside a Snapshot.
type Details struct {
	League   string `json:"league"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// Snapshot is the record the browser keeps in its local prediction history.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
	Details   Details   `json:"details"`
}

type Analysis struct {
	ID         string           `json:"id"`
	League     string           `json:"league"`
	Home       position.Outcome `json:"home"`
	Away       position.Outcome `json:"away"`
	Prediction string           `json:"prediction"`
	Snapshot   Snapshot         `json:"snapshot"`
	CreatedAt  time.Time        `json:"created_at"`
}
