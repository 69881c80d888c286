package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// AlertVariant selects the colour treatment of an alert.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertError
)

// Alert is a bordered status message with an optional title.
type Alert struct {
	BaseComponent
	message     string
	title       string
	variant     AlertVariant
	dismissible bool
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message}
}

// SuccessAlert titles the message "Listo".
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertSuccess).WithTitle("Listo")
}

// ErrorAlert titles the message "Error".
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertError).WithTitle("Error")
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the given theme context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors

	accent := c.Primary
	switch a.variant {
	case AlertSuccess:
		accent = OnlineIndicator
	case AlertError:
		accent = c.Error
	}

	content := make([]string, 0, 3)
	if a.title != "" {
		content = append(content, ctx.Theme.Typography.LabelLarge.Foreground(accent).Render(a.title))
	}
	if a.message != "" {
		message := a.message
		if ctx.MaxWidth > 4 {
			message = ansi.Wordwrap(message, ctx.MaxWidth-4, "")
		}
		content = append(content, lipgloss.NewStyle().Foreground(c.OnSurface).Render(message))
	}
	if a.dismissible {
		content = append(content, lipgloss.NewStyle().Foreground(c.OnSurfaceVariant).Faint(true).Render("[×]"))
	}

	box := lipgloss.NewStyle().
		Border(ctx.Theme.Shapes.Medium).
		BorderForeground(accent).
		Padding(0, 1)
	return a.Overlay(box, ctx.Theme).Render(strings.Join(content, "\n"))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle sets the line shown above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismissible shows a close marker under the message.
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.dismissible = dismissible
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}
