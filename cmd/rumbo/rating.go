package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appnotresponding/rumbo/internal/display"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

type ratingOptions struct {
	maxStars int
	selected int
	theme    string
}

func newRatingCmd(app *AppContext) *cobra.Command {
	opts := ratingOptions{}

	cmd := &cobra.Command{
		Use:   "rating <value>",
		Short: "Render a star rating",
		Long: `Render a star rating with its numeric label. --select simulates tapping a
star, which always yields a whole-star rating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("parse rating %q: %w", args[0], err)
			}
			if opts.selected != 0 {
				rating = display.SelectStar(opts.selected, opts.maxStars)
			}

			theme, err := app.Theme(opts.theme, "")
			if err != nil {
				return err
			}

			if app.Logger.DebugEnabled() {
				var tiers []string
				for _, tier := range display.Tiers(rating, opts.maxStars) {
					tiers = append(tiers, tier.String())
				}
				app.Logger.WithFields(map[string]any{"rating": rating, "tiers": tiers}).Debug("rendering rating")
			}

			view := components.NewRatingDisplay(rating).WithMaxStars(opts.maxStars).ViewWithContext(app.RenderContext(theme))
			fmt.Fprintln(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.maxStars, "max", display.DefaultMaxStars, "Number of stars")
	cmd.Flags().IntVar(&opts.selected, "select", 0, "Simulate tapping this star (1-based)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme mode: light, dark or auto")

	return cmd
}
