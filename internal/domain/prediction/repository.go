package prediction

import "context"

// Predictor turns a resolved fixture into formatted prediction text.
type Predictor interface {
	Predict(ctx context.Context, fixture Fixture) (string, error)
}
