package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/appnotresponding/rumbo/internal/field"
)

const defaultFieldWidth = 36

// Trailing glyphs of a masked field.
const (
	RevealGlyph = "◎"
	HideGlyph   = "◉"
)

// TextField renders a labelled outlined input driven by a field preset.
// Validation is advisory: the error line appears under the box but the value
// is shown as typed.
type TextField struct {
	BaseComponent
	preset        field.Preset
	value         string
	externalError string
	disabled      bool
	focused       bool
	revealed      bool
	cursor        int
}

// NewTextField creates a field from a preset, with the cursor at the end.
func NewTextField(preset field.Preset) *TextField {
	return &TextField{BaseComponent: NewBaseComponent(), preset: preset}
}

// View renders the field with the default theme.
func (f *TextField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field with the given theme context.
func (f *TextField) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	result := f.Result()

	width := ctx.MaxWidth
	if width <= 0 {
		width = defaultFieldWidth
	}

	labelColor, borderColor := c.OnSurfaceVariant, c.Outline
	switch {
	case f.disabled:
		borderColor = c.OutlineVariant
	case result.IsError:
		labelColor, borderColor = c.Error, c.Error
	case f.focused:
		labelColor, borderColor = c.Primary, c.Primary
	}

	box := lipgloss.NewStyle().
		Border(ctx.Theme.Shapes.Small).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(1, width-2))

	lines := make([]string, 0, 3)
	if f.preset.Label != "" {
		lines = append(lines, ctx.Theme.Typography.BodySmall.Foreground(labelColor).Render(f.preset.Label))
	}
	lines = append(lines, f.Overlay(box, ctx.Theme).Render(f.inner(ctx, width-4)))
	if result.IsError {
		message := ansi.Wordwrap(result.Message, width, "")
		lines = append(lines, ctx.Theme.Typography.LabelMedium.Foreground(c.Error).Render(message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (f *TextField) inner(ctx RenderContext, width int) string {
	c := ctx.Theme.Colors
	trailing := f.trailing()
	if trailing != "" {
		width -= ansi.StringWidth(trailing) + 1
	}

	var body string
	if f.value == "" {
		placeholder := lipgloss.NewStyle().Foreground(c.OnSurfaceVariant).Faint(true)
		body = placeholder.Render(ansi.Truncate(f.preset.Placeholder, max(0, width), ellipsis))
		if f.focused {
			body = cursorStyle(c).Render(" ") + body
		}
	} else {
		body = f.renderValue(ctx, width)
	}

	if trailing == "" {
		return body
	}
	gap := max(1, width-ansi.StringWidth(body)+1)
	return body + strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(c.OnSurfaceVariant).Render(trailing)
}

func (f *TextField) renderValue(ctx RenderContext, width int) string {
	c := ctx.Theme.Colors
	text := lipgloss.NewStyle().Foreground(c.OnSurface)
	if f.disabled {
		text = text.Faint(true)
	}

	shown := []rune(f.Display().Text)
	if !f.focused {
		return text.Render(ansi.Truncate(string(shown), max(0, width), ellipsis))
	}

	at := f.DisplayCursor()
	before, under, after := string(shown[:at]), " ", ""
	if at < len(shown) {
		under, after = string(shown[at]), string(shown[at+1:])
	}
	return text.Render(before) + cursorStyle(c).Render(under) + text.Render(after)
}

func cursorStyle(c ColorScheme) lipgloss.Style {
	return lipgloss.NewStyle().Background(c.Primary).Foreground(c.OnPrimary)
}

func (f *TextField) trailing() string {
	if f.preset.Transform != field.TransformMask {
		return ""
	}
	if f.revealed {
		return HideGlyph
	}
	return RevealGlyph
}

// Display is the value after the preset's visual transform. A revealed masked
// field shows its raw value.
func (f *TextField) Display() field.Transformed {
	transform := f.preset.Transform
	if transform == field.TransformMask && f.revealed {
		transform = field.TransformNone
	}
	return transform.Apply(f.value)
}

// DisplayCursor maps the raw cursor into the displayed text.
func (f *TextField) DisplayCursor() int {
	return f.Display().Mapping.RawToDisplay(f.cursor)
}

// Result is the advisory validation state of the current value.
func (f *TextField) Result() field.Result {
	return f.preset.Validate(f.value, f.externalError)
}

// WithValue sets the raw value and moves the cursor to its end.
func (f *TextField) WithValue(value string) *TextField {
	f.value = value
	f.cursor = len([]rune(value))
	return f
}

// WithCursor places the cursor at a raw offset, clamped to the value.
func (f *TextField) WithCursor(offset int) *TextField {
	f.cursor = max(0, min(offset, len([]rune(f.value))))
	return f
}

// WithLabel overrides the preset label.
func (f *TextField) WithLabel(label string) *TextField {
	f.preset.Label = label
	return f
}

// WithPlaceholder overrides the preset placeholder.
func (f *TextField) WithPlaceholder(placeholder string) *TextField {
	f.preset.Placeholder = placeholder
	return f
}

// WithError sets an error reported by something other than the pattern,
// such as the server. It takes precedence over pattern validation.
func (f *TextField) WithError(message string) *TextField {
	f.externalError = message
	return f
}

// WithDisabled sets the disabled state.
func (f *TextField) WithDisabled(disabled bool) *TextField {
	f.disabled = disabled
	return f
}

// WithFocused sets the focused state.
func (f *TextField) WithFocused(focused bool) *TextField {
	f.focused = focused
	return f
}

// WithRevealed shows a masked value in clear.
func (f *TextField) WithRevealed(revealed bool) *TextField {
	f.revealed = revealed
	return f
}

// WithAppliers applies theme-based style modifiers.
func (f *TextField) WithAppliers(appliers ...StyleFunc) *TextField {
	f.AddAppliers(appliers...)
	return f
}

// Value returns the raw value.
func (f *TextField) Value() string {
	return f.value
}

// Preset returns the field preset.
func (f *TextField) Preset() field.Preset {
	return f.preset
}
