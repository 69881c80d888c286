package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/display"
)

// Star glyphs per tier.
var starGlyphs = map[display.Tier]string{
	display.TierFilled: "★",
	display.TierHalf:   "⯨",
	display.TierEmpty:  "☆",
}

// RatingStars draws one star per position, tinted when active. In
// interactive mode a highlighted star marks where a press would land.
type RatingStars struct {
	BaseComponent
	rating      float64
	maxStars    int
	interactive bool
	highlight   int
}

// NewRatingStars creates a five-star row for rating.
func NewRatingStars(rating float64) *RatingStars {
	return &RatingStars{BaseComponent: NewBaseComponent(), rating: rating, maxStars: display.DefaultMaxStars}
}

// View renders the star row with the default theme.
func (r *RatingStars) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the star row with the given theme context.
func (r *RatingStars) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	active := lipgloss.NewStyle().Foreground(c.Primary)
	inactive := lipgloss.NewStyle().Foreground(c.OutlineVariant)

	tiers := display.Tiers(r.rating, r.maxStars)
	stars := make([]string, len(tiers))
	for i, tier := range tiers {
		style := inactive
		if tier != display.TierEmpty {
			style = active
		}
		if r.interactive && r.highlight == i+1 {
			style = style.Underline(true).Bold(true)
		}
		stars[i] = style.Render(starGlyphs[tier])
	}
	return r.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(strings.Join(stars, " "))
}

// WithMaxStars sets the number of stars. Non-positive values use the default.
func (r *RatingStars) WithMaxStars(n int) *RatingStars {
	if n <= 0 {
		n = display.DefaultMaxStars
	}
	r.maxStars = n
	return r
}

// WithInteractive marks the row as selectable.
func (r *RatingStars) WithInteractive(interactive bool) *RatingStars {
	r.interactive = interactive
	return r
}

// WithHighlight marks star i (1-based) in interactive mode.
func (r *RatingStars) WithHighlight(i int) *RatingStars {
	r.highlight = i
	return r
}

// Select records a press on star i and returns the new whole-star rating.
// Non-interactive stars ignore presses.
func (r *RatingStars) Select(i int) float64 {
	if !r.interactive {
		return r.rating
	}
	r.rating = display.SelectStar(i, r.maxStars)
	return r.rating
}

// Rating returns the displayed rating.
func (r *RatingStars) Rating() float64 {
	return r.rating
}

// MaxStars returns the number of stars drawn.
func (r *RatingStars) MaxStars() int {
	return r.maxStars
}

// RatingDisplay is a read-only star row followed by the numeric rating.
type RatingDisplay struct {
	BaseComponent
	stars    *RatingStars
	showText bool
}

// NewRatingDisplay creates a read-only rating with its label.
func NewRatingDisplay(rating float64) *RatingDisplay {
	return &RatingDisplay{BaseComponent: NewBaseComponent(), stars: NewRatingStars(rating), showText: true}
}

// View renders the rating with the default theme.
func (r *RatingDisplay) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rating with the given theme context.
func (r *RatingDisplay) ViewWithContext(ctx RenderContext) string {
	row := r.stars.ViewWithContext(ctx)
	if r.showText {
		label := ctx.Theme.Typography.Button.Foreground(ctx.Theme.Colors.OnSurfaceVariant).
			Render(display.LocalizedRatingLabel(r.stars.rating, ctx.Locale))
		row = row + " " + label
	}
	return r.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(row)
}

// WithMaxStars sets the number of stars.
func (r *RatingDisplay) WithMaxStars(n int) *RatingDisplay {
	r.stars.WithMaxStars(n)
	return r
}

// WithShowText toggles the numeric label.
func (r *RatingDisplay) WithShowText(show bool) *RatingDisplay {
	r.showText = show
	return r
}

// RatingPrompt is the caption under interactive stars, e.g. "Toca para valorar: 3/5".
func RatingPrompt(rating float64, maxStars int) string {
	if maxStars <= 0 {
		maxStars = display.DefaultMaxStars
	}
	return fmt.Sprintf("Toca para valorar: %d/%d", int(rating), maxStars)
}
