// Command predictor looks up league table positions and asks the completion
// API for a match forecast from the terminal.
//
// Usage:
//
//	predictor leagues
//	predictor resolve --league "premier league" --team arsenal --team chelsea
//	predictor analyze --league laliga --home "real madrid" --away girona
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd(os.Stdout, loadServices).Execute(); err != nil {
		os.Exit(1)
	}
}
