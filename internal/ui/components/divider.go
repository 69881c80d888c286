package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal rule in the outline variant colour.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a full-width horizontal rule.
func NewDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "─"}
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext fills the explicit width, else the context width, else a default.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	own := lipgloss.NewStyle().Foreground(ctx.Theme.Colors.OutlineVariant)
	return d.Overlay(own, ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the character the rule repeats.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the rule width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
