package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	envPath    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "rumbo",
		Short:         "Rumbo display formatting and terminal component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to rumbo.yaml")
	cmd.PersistentFlags().StringVar(&flags.envPath, "env", ".env", "Path to a dotenv file with RUMBO_* overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newPhoneCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newInitialsCmd(app))
	cmd.AddCommand(newRatingCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
