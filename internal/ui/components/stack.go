package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with a fixed gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack of children.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children, skipping nil and empty ones. A
// horizontal stack splits the available width evenly.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx.MaxWidth = available / len(s.children)
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, strings.Repeat("\n", max(0, s.gap-1)), lipgloss.JoinVertical)
	}

	return constrain(s.ComputeStyle(ctx.Theme), ctx).Render(content)
}

func (s *Stack) join(views []string, spacer string, joiner func(lipgloss.Position, ...string) string) string {
	if len(views) == 0 {
		return ""
	}
	if s.gap == 0 {
		return joiner(s.crossAlign.position(), views...)
	}

	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return joiner(s.crossAlign.position(), spaced...)
}

// WithDirection sets the stack direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(0, gap)
	return s
}

// WithCrossAlign sets the cross-axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stacked components.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
