package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-predictor/internal/domain/prediction"
	predictionmock "github.com/riskibarqy/matchday-predictor/internal/mocks/domain/prediction"
	"github.com/stretchr/testify/mock"
)

type stubIDGenerator struct {
	id string
}

func (g stubIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestAnalysisService_Analyze_EndToEnd(t *testing.T) {
	t.Parallel()

	source := newStubStandingsSource()
	source.pages[testLaLigaURL] = laLigaPage()
	positions := NewPositionService(newStubLeagueRepo(t), source, PositionServiceConfig{}, nil)

	predictor := predictionmock.NewPredictor(t)
	predictor.
		On("Predict", mock.Anything, prediction.Fixture{
			League:       "LaLiga",
			HomeTeam:     "Real Madrid",
			AwayTeam:     "Girona",
			HomePosition: 1,
			AwayPosition: 4,
		}).
		Return("**Favourite team**: Real Madrid", nil).
		Once()

	svc := NewAnalysisService(positions, predictor, stubIDGenerator{id: "analysis-1"}, nil)
	fixedNow := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	got, err := svc.Analyze(context.Background(), AnalyzeInput{League: "laliga", HomeTeam: "Real Madrid", AwayTeam: "Girona"})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if got.Home.Position != 1 || got.Away.Position != 4 {
		t.Fatalf("unexpected positions: home=%d away=%d", got.Home.Position, got.Away.Position)
	}
	if got.ID != "analysis-1" || got.League != "LaLiga" {
		t.Fatalf("unexpected analysis header: id=%s league=%s", got.ID, got.League)
	}
	if got.Prediction != "**Favourite team**: Real Madrid" || got.Snapshot.Content != got.Prediction {
		t.Fatalf("unexpected prediction content: %q / %q", got.Prediction, got.Snapshot.Content)
	}
	if !got.Snapshot.Timestamp.Equal(fixedNow) || !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected timestamps: snapshot=%s created=%s", got.Snapshot.Timestamp, got.CreatedAt)
	}
	if got.Snapshot.Details != (prediction.Details{League: "laliga", HomeTeam: "Real Madrid", AwayTeam: "Girona"}) {
		t.Fatalf("unexpected snapshot details: %+v", got.Snapshot.Details)
	}

	if n := source.callCount(testLaLigaURL); n != 2 {
		t.Fatalf("expected one independent fetch per team, got=%d", n)
	}
}

func TestAnalysisService_Analyze_FailureAbortsBeforePredicting(t *testing.T) {
	t.Parallel()

	source := newStubStandingsSource()
	source.pages[testLaLigaURL] = laLigaPage()
	positions := NewPositionService(newStubLeagueRepo(t), source, PositionServiceConfig{}, nil)
	predictor := predictionmock.NewPredictor(t)
	svc := NewAnalysisService(positions, predictor, stubIDGenerator{id: "x"}, nil)

	tests := []struct {
		name  string
		input AnalyzeInput
		want  error
	}{
		{name: "team not found", input: AnalyzeInput{League: "laliga", HomeTeam: "Real Madrid", AwayTeam: "Valencia"}, want: ErrTeamNotFound},
		{name: "unsupported league", input: AnalyzeInput{League: "rugby championship", HomeTeam: "Leinster", AwayTeam: "Munster"}, want: ErrUnsupportedLeague},
		{name: "missing field", input: AnalyzeInput{League: "laliga", HomeTeam: "Real Madrid"}, want: ErrInvalidInput},
	}
	for _, tt := range tests {
		_, err := svc.Analyze(context.Background(), tt.input)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}

	predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_HomeFailureReportedFirst(t *testing.T) {
	t.Parallel()

	source := newStubStandingsSource()
	source.pages[testLaLigaURL] = laLigaPage()
	positions := NewPositionService(newStubLeagueRepo(t), source, PositionServiceConfig{}, nil)
	svc := NewAnalysisService(positions, predictionmock.NewPredictor(t), stubIDGenerator{id: "x"}, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeInput{League: "laliga", HomeTeam: "Valencia", AwayTeam: "Osasuna"})
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if want := "team not found: team not found in LaLiga"; err.Error() != want {
		t.Fatalf("unexpected error text: got=%q want=%q", err.Error(), want)
	}
}

func TestAnalysisService_Analyze_PredictorFailure(t *testing.T) {
	t.Parallel()

	source := newStubStandingsSource()
	source.pages[testLaLigaURL] = laLigaPage()
	positions := NewPositionService(newStubLeagueRepo(t), source, PositionServiceConfig{}, nil)

	predictor := predictionmock.NewPredictor(t)
	predictor.
		On("Predict", mock.Anything, mock.AnythingOfType("prediction.Fixture")).
		Return("", ErrDependencyUnavailable).
		Once()

	svc := NewAnalysisService(positions, predictor, stubIDGenerator{id: "x"}, nil)
	_, err := svc.Analyze(context.Background(), AnalyzeInput{League: "laliga", HomeTeam: "Barcelona", AwayTeam: "Girona"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
