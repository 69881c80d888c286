package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/display"
)

// AvatarSize selects how much room an avatar takes.
type AvatarSize int

const (
	AvatarSmall AvatarSize = iota
	AvatarMedium
	AvatarLarge
)

// Glyphs drawn in place of images, which a terminal cannot show.
const (
	AvatarPhotoGlyph = "◉"
	AvatarUserGlyph  = "☺"
	OnlineGlyph      = "●"
)

// Avatar shows a profile picture marker, else initials derived from the name,
// else a generic user glyph.
type Avatar struct {
	BaseComponent
	pictureURL string
	name       string
	size       AvatarSize
	online     bool
	bordered   bool
}

// NewAvatar creates a medium avatar for the given name.
func NewAvatar(name string) *Avatar {
	return &Avatar{BaseComponent: NewBaseComponent(), name: name, size: AvatarMedium}
}

// View renders the avatar with the default theme.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the given theme context.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	style := lipgloss.NewStyle().
		Background(c.PrimaryContainer).
		Foreground(c.OnPrimaryContainer).
		Bold(true)

	switch a.size {
	case AvatarSmall:
		style = style.Padding(0, 0)
	case AvatarLarge:
		style = style.Padding(1, 2)
	default:
		style = style.Padding(0, 1)
	}
	if a.bordered {
		style = style.Border(ctx.Theme.Shapes.Medium).BorderForeground(c.Outline)
	}

	face := a.Overlay(style, ctx.Theme).Render(a.Content())
	if !a.online {
		return face
	}

	dot := lipgloss.NewStyle().Foreground(OnlineIndicator).Render(OnlineGlyph)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, face, dot)
}

// Content is what the avatar draws before styling.
func (a *Avatar) Content() string {
	if strings.TrimSpace(a.pictureURL) != "" {
		return AvatarPhotoGlyph
	}
	if initials, ok := display.Initials(a.name); ok {
		return initials
	}
	return AvatarUserGlyph
}

// WithPicture sets the profile picture URL.
func (a *Avatar) WithPicture(url string) *Avatar {
	a.pictureURL = url
	return a
}

// WithSize sets the avatar size.
func (a *Avatar) WithSize(size AvatarSize) *Avatar {
	a.size = size
	return a
}

// WithOnline toggles the presence dot.
func (a *Avatar) WithOnline(online bool) *Avatar {
	a.online = online
	return a
}

// WithBorder draws an outline around the avatar.
func (a *Avatar) WithBorder(bordered bool) *Avatar {
	a.bordered = bordered
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Avatar) WithAppliers(appliers ...StyleFunc) *Avatar {
	a.AddAppliers(appliers...)
	return a
}
