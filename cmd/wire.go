package cmd

import (
	"fmt"
	"io"
	"log/slog"

	viperconfig "github.com/bnema/kondo-sampler/internal/adapters/config/viper"
	"github.com/bnema/kondo-sampler/internal/adapters/random/pcg"
	summaryadapter "github.com/bnema/kondo-sampler/internal/adapters/render/summary"
	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/bnema/kondo-sampler/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type seededSource interface {
	ports.RandomSource
	Seed() uint64
}

type app struct {
	config          *viper.Viper
	newRandom       func(seed uint64) (seededSource, error)
	summaryRenderer func(application.Summary) (string, error)
}

func wireApp() *app {
	return &app{
		config: viperconfig.New(),
		newRandom: func(seed uint64) (seededSource, error) {
			return pcg.New(seed)
		},
		summaryRenderer: summaryadapter.Render,
	}
}

// bindFlags makes explicitly set flags win over KONDO_* variables.
func (a *app) bindFlags(cmd *cobra.Command) error {
	if err := a.config.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := a.config.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("bind inherited flags: %w", err)
	}

	return nil
}

func (a *app) logger(w io.Writer) (*slog.Logger, error) {
	level, err := viperconfig.LoadLogLevel(a.config)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
