package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/display"
)

const (
	planTitle       = "Planea Tu Día"
	unknownLocation = "Desconocida"
)

// LocationHeader titles the planning screen with the user's current location.
type LocationHeader struct {
	BaseComponent
	location string
}

// NewLocationHeader falls back to "Desconocida" for a blank location.
func NewLocationHeader(location string) *LocationHeader {
	return &LocationHeader{BaseComponent: NewBaseComponent(), location: location}
}

// View renders the header with the default theme.
func (h *LocationHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *LocationHeader) ViewWithContext(ctx RenderContext) string {
	location := h.location
	if location == "" {
		location = unknownLocation
	}
	return h.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(
		planHeader(ctx, "Tu Ubicación Actual: "+location))
}

// DayHeader titles the planning screen with a date in long Spanish form.
type DayHeader struct {
	BaseComponent
	day time.Time
}

// NewDayHeader creates a header for day.
func NewDayHeader(day time.Time) *DayHeader {
	return &DayHeader{BaseComponent: NewBaseComponent(), day: day}
}

// View renders the header with the default theme.
func (h *DayHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *DayHeader) ViewWithContext(ctx RenderContext) string {
	return h.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(
		planHeader(ctx, display.SpanishLongDate(h.day)))
}

func planHeader(ctx RenderContext, subtitle string) string {
	c := ctx.Theme.Colors
	typo := ctx.Theme.Typography
	pad := lipgloss.NewStyle().PaddingLeft(2)

	return lipgloss.JoinVertical(lipgloss.Left,
		pad.Inherit(typo.HeadlineLarge.Foreground(c.OnSurface)).Render(planTitle),
		pad.Inherit(typo.BodyLarge.Foreground(c.OnSurface)).Render(subtitle),
		NewDivider().ViewWithContext(ctx),
	)
}
