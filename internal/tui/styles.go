package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/ui/components"
)

func titleStyle(theme components.Theme) lipgloss.Style {
	return theme.Typography.H2.Foreground(theme.Colors.Primary)
}

func labelStyle(theme components.Theme, focused bool) lipgloss.Style {
	if focused {
		return theme.Typography.BodySmall.Foreground(theme.Colors.Primary)
	}
	return theme.Typography.BodySmall.Foreground(theme.Colors.OnSurfaceVariant)
}

func faintStyle(theme components.Theme) lipgloss.Style {
	return theme.Typography.LabelSmall.Foreground(theme.Colors.OnSurfaceVariant)
}
