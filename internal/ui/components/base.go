package components

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/appnotresponding/rumbo/internal/ui"
)

// BaseComponent carries the caller's style overrides. Embed it in components.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy derives a component style from the active theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies its functions in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every function in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewBaseComponent returns a base with no overrides.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle(), strategy: CompositeStrategy{}}
}

// ComputeStyle resolves the caller overrides against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// Overlay applies the caller overrides on top of a component's own style.
// Explicit style values win; appliers run last. Inherit never copies padding
// or margins, so the component's own spacing is carried over unless the
// caller set some.
func (b *BaseComponent) Overlay(own lipgloss.Style, theme Theme) lipgloss.Style {
	merged := b.style.Inherit(own)
	if !hasSpacing(b.style.GetPadding()) {
		merged = merged.Padding(own.GetPadding())
	}
	if !hasSpacing(b.style.GetMargin()) {
		merged = merged.Margin(own.GetMargin())
	}
	if b.strategy == nil {
		return merged
	}
	return b.strategy.Apply(merged, theme)
}

func hasSpacing(top, right, bottom, left int) bool {
	return top != 0 || right != 0 || bottom != 0 || left != 0
}

// SetStyle replaces the caller overrides.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style functions after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	existing, ok := b.strategy.(CompositeStrategy)
	if !ok {
		current := b.strategy
		existing = CompositeStrategy{funcs: []StyleFunc{func(s lipgloss.Style, t Theme) lipgloss.Style {
			if current != nil {
				return current.Apply(s, t)
			}
			return s
		}}}
	}

	funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
	copy(funcs, existing.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// DefaultLocale formats numbers when no locale is configured.
var DefaultLocale = language.MustParse("es-CO")

// RenderContext carries the theme, locale and available width down the tree.
type RenderContext struct {
	Theme    Theme
	Locale   language.Tag
	MaxWidth int
}

// DefaultContext renders with the default theme and no width limit.
func DefaultContext() RenderContext {
	return NewContext(DefaultTheme())
}

// NewContext renders with theme and no width limit.
func NewContext(theme Theme) RenderContext {
	return RenderContext{Theme: theme, Locale: DefaultLocale}
}

// WithLocale sets the locale used for numbers.
func (r RenderContext) WithLocale(tag language.Tag) RenderContext {
	r.Locale = tag
	return r
}

// WithTheme swaps the theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth narrows the context. Non-positive widths mean unlimited.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	if width > 0 && (r.MaxWidth <= 0 || width < r.MaxWidth) {
		r.MaxWidth = width
	}
	return r
}

// ContextualRenderable is a component that renders against a context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

func constrain(style lipgloss.Style, ctx RenderContext) lipgloss.Style {
	if ctx.MaxWidth > 0 {
		return style.MaxWidth(ctx.MaxWidth)
	}
	return style
}

// CrossAxisAlignment aligns children across a stack's direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
