package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-predictor/internal/app"
	"github.com/riskibarqy/matchday-predictor/internal/config"
	"github.com/riskibarqy/matchday-predictor/internal/domain/position"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
	"github.com/spf13/cobra"
)

// servicesLoader builds the usecases a command needs. withPredictor is false
// for commands that never call the completion API.
type servicesLoader func(withPredictor bool) (*app.Services, error)

type leagueOutput struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Aliases     []string `json:"aliases"`
	SourceURL   string   `json:"source_url"`
}

func loadServices(withPredictor bool) (*app.Services, error) {
	if !withPredictor {
		if err := os.Setenv("GROQ_ENABLED", "false"); err != nil {
			return nil, fmt.Errorf("disable predictor: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)

	return app.NewServices(cfg, logger)
}

func newRootCmd(out io.Writer, load servicesLoader) *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "predictor",
		Short:        "Football match predictor CLI",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Overall command timeout")

	root.AddCommand(leaguesCmd(out, load))
	root.AddCommand(resolveCmd(out, load, &timeout))
	root.AddCommand(analyzeCmd(out, load, &timeout))
	return root
}

func leaguesCmd(out io.Writer, load servicesLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List supported leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := load(false)
			if err != nil {
				return err
			}

			leagues, err := services.Leagues.ListLeagues(commandContext(cmd))
			if err != nil {
				return err
			}

			items := make([]leagueOutput, 0, len(leagues))
			for _, lg := range leagues {
				items = append(items, leagueOutput{
					Key:         lg.Key,
					DisplayName: lg.DisplayName,
					Aliases:     lg.Aliases,
					SourceURL:   lg.SourceURL,
				})
			}
			return writeJSON(out, items)
		},
	}
}

func resolveCmd(out io.Writer, load servicesLoader, timeout *time.Duration) *cobra.Command {
	var leagueText string
	var teams []string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve table positions for one or more teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(teams) == 0 {
				return fmt.Errorf("at least one --team is required")
			}

			services, err := load(false)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), *timeout)
			defer cancel()

			lookups := make([]position.Lookup, 0, len(teams))
			for _, team := range teams {
				lookups = append(lookups, position.Lookup{League: leagueText, Team: team})
			}

			outcomes, err := services.Positions.ResolveBatch(ctx, lookups)
			if err != nil {
				return err
			}
			return writeJSON(out, outcomes)
		},
	}
	cmd.Flags().StringVar(&leagueText, "league", "", "League name, free text")
	cmd.Flags().StringArrayVar(&teams, "team", nil, "Team name, free text (repeatable)")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func analyzeCmd(out io.Writer, load servicesLoader, timeout *time.Duration) *cobra.Command {
	var input usecase.AnalyzeInput

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Predict a fixture from both teams' table positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := load(true)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), *timeout)
			defer cancel()

			analysis, err := services.Analyses.Analyze(ctx, input)
			if err != nil {
				return err
			}
			return writeJSON(out, analysis)
		},
	}
	cmd.Flags().StringVar(&input.League, "league", "", "League name, free text")
	cmd.Flags().StringVar(&input.HomeTeam, "home", "", "Home team name")
	cmd.Flags().StringVar(&input.AwayTeam, "away", "", "Away team name")
	_ = cmd.MarkFlagRequired("league")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeJSON(out io.Writer, v any) error {
	raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := out.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
