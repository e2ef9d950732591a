package cmd

import (
	viperconfig "github.com/bnema/kondo-sampler/internal/adapters/config/viper"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(wireApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kondo",
		Short:         "Metropolis sampler for a toy Kondo-effect Hamiltonian",
		Long:          "kondo anneals a Metropolis Monte Carlo chain over lattice states (k, l, m, spin) scored by H = k² + l² + m² + spin·J and prints the trajectory.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String(viperconfig.KeyLogLevel, "warn", "Log level (debug, info, warn, error); env KONDO_LOG_LEVEL")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newEnergyCmd(app),
	)

	return rootCmd
}
