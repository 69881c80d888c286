package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errInvalidValue fails the command after the validation message has been
// printed, so main does not print it again.
var errInvalidValue = errors.New("value is invalid")

func newValidateCmd(app *AppContext) *cobra.Command {
	var externalError string

	cmd := &cobra.Command{
		Use:   "validate <preset> <value>",
		Short: "Validate a value against a field preset",
		Long: `Validate a value against a field preset and print the message that would
appear under the field. Empty values are never errors. An error passed with
--error takes precedence over the preset's pattern.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, ok := app.Registry.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown preset %q (available: %s)", args[0], strings.Join(app.Registry.Names(), ", "))
			}

			result := preset.Validate(args[1], externalError)
			app.Logger.WithFields(map[string]any{"preset": preset.Name, "error": result.IsError}).Debug("validated value")

			if result.IsError {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", result.Message)
				return errInvalidValue
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ válido")
			return nil
		},
	}

	cmd.Flags().StringVar(&externalError, "error", "", "External error shown instead of the pattern check")

	return cmd
}
