package components

import "github.com/charmbracelet/lipgloss"

// PillVariant is the visual treatment of a pill.
type PillVariant int

const (
	PillFilled PillVariant = iota
	PillOutlined
	PillTonal
)

// Pill is a selectable chip.
type Pill struct {
	BaseComponent
	text     string
	variant  PillVariant
	selected bool
	icon     string
}

// NewPill creates a filled pill.
func NewPill(text string) *Pill {
	return &Pill{BaseComponent: NewBaseComponent(), text: text}
}

// View renders the pill with the default theme.
func (p *Pill) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pill with the given theme context.
func (p *Pill) ViewWithContext(ctx RenderContext) string {
	content := p.text
	if p.icon != "" {
		content = p.icon + " " + content
	}
	return p.Overlay(p.variantStyle(ctx.Theme), ctx.Theme).Render(content)
}

func (p *Pill) variantStyle(theme Theme) lipgloss.Style {
	c := theme.Colors
	style := theme.Typography.Button.Padding(0, 1)

	switch p.variant {
	case PillOutlined:
		fg, border := c.OnSurfaceVariant, c.Outline
		if p.selected {
			fg, border = c.Primary, c.Primary
		}
		return style.Foreground(fg).Border(theme.Shapes.Pill).BorderForeground(border)
	case PillTonal:
		if p.selected {
			return style.Background(c.SecondaryContainer).Foreground(c.OnSecondaryContainer)
		}
		return style.Background(c.SurfaceContainerHigh).Foreground(c.OnSurfaceVariant)
	default:
		if p.selected {
			return style.Background(c.Primary).Foreground(c.OnPrimary)
		}
		return style.Background(c.PrimaryContainer).Foreground(c.OnPrimaryContainer)
	}
}

// WithVariant sets the pill variant.
func (p *Pill) WithVariant(variant PillVariant) *Pill {
	p.variant = variant
	return p
}

// WithSelected sets the selected state.
func (p *Pill) WithSelected(selected bool) *Pill {
	p.selected = selected
	return p
}

// WithIcon sets the glyph drawn before the text.
func (p *Pill) WithIcon(icon string) *Pill {
	p.icon = icon
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *Pill) WithAppliers(appliers ...StyleFunc) *Pill {
	p.AddAppliers(appliers...)
	return p
}

// Toggle flips the selection and returns the new state.
func (p *Pill) Toggle() bool {
	p.selected = !p.selected
	return p.selected
}

// Selected reports whether the pill is selected.
func (p *Pill) Selected() bool {
	return p.selected
}
