package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// TypeRole picks a style out of the typography scale.
type TypeRole func(Typography) lipgloss.Style

// Typography roles used by the molecules.
var (
	TypeHeadlineLarge TypeRole = func(t Typography) lipgloss.Style { return t.HeadlineLarge }
	TypeTitleMedium   TypeRole = func(t Typography) lipgloss.Style { return t.TitleMedium }
	TypeTitleSmall    TypeRole = func(t Typography) lipgloss.Style { return t.TitleSmall }
	TypeBodyLarge     TypeRole = func(t Typography) lipgloss.Style { return t.BodyLarge }
	TypeBodySmall     TypeRole = func(t Typography) lipgloss.Style { return t.BodySmall }
	TypeLabelLarge    TypeRole = func(t Typography) lipgloss.Style { return t.LabelLarge }
	TypeLabelMedium   TypeRole = func(t Typography) lipgloss.Style { return t.LabelMedium }
	TypeLabelSmall    TypeRole = func(t Typography) lipgloss.Style { return t.LabelSmall }
)

// Text renders a string in one of the app text styles. Content wraps to the
// context width and is cut to maxLines with an ellipsis.
type Text struct {
	BaseComponent
	content  string
	typ      TypeRole
	color    Role
	maxLines int
}

// NewText creates Body text in the on-background colour.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		typ:           func(t Typography) lipgloss.Style { return t.Body },
		color:         RoleOnBackground,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if ctx.MaxWidth > 0 {
		content = ansi.Wordwrap(content, ctx.MaxWidth, "")
	}
	if t.maxLines > 0 {
		content = clampLines(content, t.maxLines, ctx.MaxWidth)
	}

	own := t.typ(ctx.Theme.Typography).Foreground(t.color(ctx.Theme.Colors))
	return t.Overlay(own, ctx.Theme).Render(content)
}

func clampLines(content string, maxLines, width int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= maxLines {
		return content
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if width > 0 && ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	lines[maxLines-1] = last + ellipsis
	return strings.Join(lines, "\n")
}

// WithTextStyle selects one of the app text styles.
func (t *Text) WithTextStyle(style TextStyle) *Text {
	t.typ = func(ty Typography) lipgloss.Style { return ty.Style(style) }
	return t
}

// WithType selects a typography role.
func (t *Text) WithType(role TypeRole) *Text {
	if role != nil {
		t.typ = role
	}
	return t
}

// WithColor selects the colour role.
func (t *Text) WithColor(role Role) *Text {
	if role != nil {
		t.color = role
	}
	return t
}

// WithMaxLines limits the rendered lines. Zero means unlimited.
func (t *Text) WithMaxLines(n int) *Text {
	t.maxLines = max(0, n)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Content returns the unstyled text.
func (t *Text) Content() string {
	return t.content
}
