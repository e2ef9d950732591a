package cmd

import (
	"fmt"

	viperconfig "github.com/bnema/kondo-sampler/internal/adapters/config/viper"
	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/spf13/cobra"
)

func newEnergyCmd(app *app) *cobra.Command {
	var rawState string

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Print the lattice energy and Kondo score of a state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.bindFlags(cmd); err != nil {
				return err
			}

			state, err := domain.ParseState(rawState)
			if err != nil {
				return err
			}

			coupling, err := viperconfig.LoadCoupling(app.config)
			if err != nil {
				return err
			}
			hamiltonian := domain.KondoEffect{CouplingStrength: coupling}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "state: %s\n", state)
			_, _ = fmt.Fprintf(out, "energy: %g\n", state.Energy())
			_, _ = fmt.Fprintf(out, "score: %g\n", hamiltonian.Score(state))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawState, "state", "1,1,1,up", "State as k,l,m,spin")
	cmd.Flags().Float64(viperconfig.KeyCoupling, application.DefaultCouplingStrength, "Kondo coupling strength J")

	return cmd
}
