package cmd

import (
	"context"
	"fmt"
	"io"

	viperconfig "github.com/bnema/kondo-sampler/internal/adapters/config/viper"
	summaryadapter "github.com/bnema/kondo-sampler/internal/adapters/render/summary"
	"github.com/bnema/kondo-sampler/internal/adapters/render/trajectory"
	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/spf13/cobra"
)

const (
	summaryNone = ""
	summaryText = "text"
	summaryJSON = "json"
	summaryTOML = "toml"
)

func newRunCmd(app *app) *cobra.Command {
	var format string
	var summaryFormat string
	var progress bool

	defaults := application.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the annealed Metropolis chain and print the trajectory",
		Long:  "run prints the current state after every iteration as k,l,m,spin (↑ or ↓), whether or not the proposal was accepted. With --progress the trajectory is hidden unless --format is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateSummaryFormat(summaryFormat); err != nil {
				return err
			}
			if err := app.bindFlags(cmd); err != nil {
				return err
			}

			logger, err := app.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg, err := viperconfig.LoadConfig(app.config)
			if err != nil {
				return fmt.Errorf("load sampler config: %w", err)
			}

			source, err := app.newRandom(cfg.Seed)
			if err != nil {
				return fmt.Errorf("initialise random source: %w", err)
			}
			cfg.Seed = source.Seed()

			// The progress line and a streamed trajectory would share the
			// terminal, so --progress hides the trajectory unless --format is set.
			if progress && !cmd.Flags().Changed("format") {
				format = string(trajectory.FormatNone)
			}

			writer, err := trajectory.NewWriter(cmd.OutOrStdout(), trajectory.Format(format))
			if err != nil {
				return err
			}
			sink := &progressSink{next: writer, total: cfg.Iterations}

			sampler, err := application.NewSampler(cfg, source,
				application.WithSink(sink),
				application.WithLogger(logger.With("seed", cfg.Seed)),
			)
			if err != nil {
				return fmt.Errorf("build sampler: %w", err)
			}

			var summary application.Summary
			sample := func(ctx context.Context, report func(int)) error {
				sink.report = report
				var runErr error
				summary, runErr = sampler.Run(ctx)
				return runErr
			}

			if progress {
				err = runSamplingProgress(cmd.Context(), cmd.ErrOrStderr(), cfg.Iterations, sample)
			} else {
				err = sample(cmd.Context(), nil)
			}
			if err != nil {
				return fmt.Errorf("run sampler: %w", err)
			}

			return writeSummary(cmd.OutOrStdout(), app, summaryFormat, summary)
		},
	}

	flags := cmd.Flags()
	flags.Int(viperconfig.KeyIterations, defaults.Iterations, "Number of Metropolis iterations")
	flags.Float64(viperconfig.KeyBetaStep, defaults.BetaStep, "Inverse temperature increment per iteration")
	flags.Float64(viperconfig.KeyCoupling, defaults.CouplingStrength, "Kondo coupling strength J")
	flags.String(viperconfig.KeyInitialState, "1,1,1,up", "Initial state as k,l,m,spin")
	flags.Int(viperconfig.KeyRangeMin, int(defaults.CoordinateRange.Min), "Lower bound (inclusive) of redrawn coordinates")
	flags.Int(viperconfig.KeyRangeMax, int(defaults.CoordinateRange.Max), "Upper bound (exclusive) of redrawn coordinates")
	flags.String(viperconfig.KeyPolicy, string(defaults.Policy), "Proposal policy: coupled (spin moves also redraw k) or independent")
	flags.Uint64(viperconfig.KeySeed, 0, "Random seed; 0 seeds from the OS")
	flags.StringVar(&format, "format", string(trajectory.FormatText), "Trajectory output: text, jsonl or none (none by default with --progress)")
	flags.StringVar(&summaryFormat, "summary", summaryNone, "Print a run summary after the trajectory: text, json or toml")
	flags.BoolVar(&progress, "progress", false, "Show the iteration count on stderr while sampling")

	return cmd
}

func validateSummaryFormat(format string) error {
	switch format {
	case summaryNone, summaryText, summaryJSON, summaryTOML:
		return nil
	default:
		return fmt.Errorf("unsupported summary format %q", format)
	}
}

func writeSummary(out io.Writer, app *app, format string, summary application.Summary) error {
	var (
		encoded []byte
		err     error
	)

	switch format {
	case summaryNone:
		return nil
	case summaryText:
		rendered, renderErr := app.summaryRenderer(summary)
		if renderErr != nil {
			return fmt.Errorf("render summary: %w", renderErr)
		}
		encoded = []byte(rendered + "\n")
	case summaryJSON:
		encoded, err = summaryadapter.EncodeJSON(summary)
	case summaryTOML:
		encoded, err = summaryadapter.EncodeTOML(summary)
	}
	if err != nil {
		return err
	}

	_, err = out.Write(encoded)
	return err
}
