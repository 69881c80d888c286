package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appnotresponding/rumbo/internal/display"
)

func newInitialsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "initials <name>",
		Short: "Print the avatar initials for a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			initials, ok := display.Initials(name)
			if !ok {
				return fmt.Errorf("name %q has no visible characters", name)
			}
			app.Logger.Debug("derived initials")
			fmt.Fprintln(cmd.OutOrStdout(), initials)
			return nil
		},
	}
}
