package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appnotresponding/rumbo/internal/catalog"
)

type catalogOptions struct {
	theme    string
	contrast string
	width    int
	plain    bool
	check    string
	update   string
}

func newCatalogCmd(app *AppContext) *cobra.Command {
	opts := catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render every component preview",
		Long: `Render every component preview in the selected theme.

With --check the plain render is compared against a stored snapshot and the
command fails with a diff when they differ. --update rewrites the snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme mode: light, dark or auto (default from config)")
	cmd.Flags().StringVar(&opts.contrast, "contrast", "", "Contrast: standard, medium or high (default from config)")
	cmd.Flags().IntVar(&opts.width, "width", catalog.DefaultWidth, "Layout width in columns")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colours and styling")
	cmd.Flags().StringVar(&opts.check, "check", "", "Compare against the snapshot at this path")
	cmd.Flags().StringVar(&opts.update, "update", "", "Write the snapshot to this path")
	cmd.MarkFlagsMutuallyExclusive("check", "update")

	return cmd
}

func runCatalog(cmd *cobra.Command, app *AppContext, opts catalogOptions) error {
	theme, err := app.Theme(opts.theme, opts.contrast)
	if err != nil {
		return err
	}

	catalogOpts := catalog.Options{
		Theme:  theme,
		Locale: app.Locale,
		Width:  opts.width,
		Logger: app.Logger,
	}

	switch {
	case opts.check != "":
		if err := catalog.Check(opts.check, catalogOpts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s is up to date\n", opts.check)
	case opts.update != "":
		changed, err := catalog.Update(opts.update, catalogOpts)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s updated\n", opts.update)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s unchanged\n", opts.update)
		}
	case opts.plain:
		fmt.Fprint(cmd.OutOrStdout(), catalog.Plain(catalogOpts))
	default:
		fmt.Fprint(cmd.OutOrStdout(), catalog.Render(catalogOpts))
	}
	return nil
}
