package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant is the visual emphasis of a button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonTertiary
)

// ButtonSize controls horizontal padding, and vertical padding for Large.
type ButtonSize int

const (
	ButtonSmall ButtonSize = iota
	ButtonMedium
	ButtonLarge
)

func (s ButtonSize) padding() (vertical, horizontal int) {
	switch s {
	case ButtonSmall:
		return 0, 1
	case ButtonLarge:
		return 1, 3
	default:
		return 0, 2
	}
}

// LoadingGlyph replaces the icon while a button is busy.
const LoadingGlyph = "◌"

// Button renders a labelled action. A loading or disabled button is not interactive.
type Button struct {
	BaseComponent
	label     string
	variant   ButtonVariant
	size      ButtonSize
	icon      string
	disabled  bool
	loading   bool
	focused   bool
	fullWidth bool
}

// NewButton creates a medium primary button.
func NewButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label, size: ButtonMedium}
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonPrimary)
}

// SecondaryButton creates an outlined button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonSecondary)
}

// TertiaryButton creates a text-only button.
func TertiaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonTertiary)
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	switch {
	case b.loading:
		content = LoadingGlyph + " " + content
	case b.icon != "":
		content = b.icon + " " + content
	}

	style := b.Overlay(b.variantStyle(ctx.Theme), ctx.Theme)
	frame := style.GetHorizontalBorderSize()
	switch {
	case ctx.MaxWidth <= 0:
	case b.fullWidth:
		style = style.Width(ctx.MaxWidth - frame).Align(lipgloss.Center)
	case lipgloss.Width(style.Render(content)) > ctx.MaxWidth:
		// Too wide for the slot: wrap the label instead of overflowing.
		style = style.Width(ctx.MaxWidth - frame)
	}
	return style.Render(content)
}

func (b *Button) variantStyle(theme Theme) lipgloss.Style {
	c := theme.Colors
	vertical, horizontal := b.size.padding()
	style := theme.Typography.Button.Padding(vertical, horizontal)

	switch b.variant {
	case ButtonSecondary:
		border := c.Outline
		switch {
		case b.disabled:
			border = c.OutlineVariant
		case b.focused:
			border = c.Primary
		}
		style = style.Border(theme.Shapes.Medium).BorderForeground(border).Foreground(c.Primary)
	case ButtonTertiary:
		style = style.Foreground(c.Primary).Underline(b.focused)
	default:
		style = style.Background(c.Primary).Foreground(c.OnPrimary)
		if b.disabled {
			style = style.Background(c.SurfaceContainerHigh)
		}
		if b.focused {
			style = style.Underline(true)
		}
	}

	if b.disabled {
		style = style.Foreground(c.OnSurface).Faint(true)
	} else if b.loading {
		style = style.Faint(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithIcon sets a leading glyph.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading shows the loading glyph and disables interaction.
func (b *Button) WithLoading(loading bool) *Button {
	b.loading = loading
	return b
}

// WithFocused highlights the button as the focused control.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithFullWidth stretches the button to the context width.
func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Interactive reports whether the button accepts presses.
func (b *Button) Interactive() bool {
	return !b.disabled && !b.loading
}
