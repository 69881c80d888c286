package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appnotresponding/rumbo/internal/display"
)

func newPhoneCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Format and inspect phone numbers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "format <value>",
		Short: "Show a phone value grouped for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := display.SanitizePhone(args[0])
			formatted := display.FormatPhone(raw)
			app.Logger.WithFields(map[string]any{"raw": raw}).Debug("formatted phone")
			fmt.Fprintln(cmd.OutOrStdout(), formatted.Text())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sanitize <value>",
		Short: "Keep only '+' and digits, capped at the E.164 length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), display.SanitizePhone(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "region <value>",
		Short: "Look up the region of an international number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := display.LookupPhoneRegion(display.SanitizePhone(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "region: %s\n", region.Region)
			fmt.Fprintf(out, "country code: %d\n", region.CountryCode)
			fmt.Fprintf(out, "valid: %t\n", region.Valid)
			fmt.Fprintf(out, "e164: %s\n", region.E164)
			return nil
		},
	})

	return cmd
}
