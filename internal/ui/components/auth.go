package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/field"
)

const (
	signInLabel = "Iniciar sesión"
	signUpLabel = "Registrarse"
)

// AuthPrimaryCTA stacks the full-width sign-in and sign-up buttons.
type AuthPrimaryCTA struct {
	BaseComponent
	focus int
}

// NewAuthPrimaryCTA creates the sign-in and sign-up button pair.
func NewAuthPrimaryCTA() *AuthPrimaryCTA {
	return &AuthPrimaryCTA{BaseComponent: NewBaseComponent(), focus: -1}
}

// View renders the call to action with the default theme.
func (a *AuthPrimaryCTA) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the call to action with the given theme context.
func (a *AuthPrimaryCTA) ViewWithContext(ctx RenderContext) string {
	buttons := a.Buttons()
	stack := VStack(buttons[0], buttons[1]).WithGap(1)
	return a.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(stack.ViewWithContext(ctx))
}

// Buttons returns the sign-in and sign-up buttons in order.
func (a *AuthPrimaryCTA) Buttons() [2]*Button {
	return [2]*Button{
		PrimaryButton(signInLabel).WithFullWidth(true).WithFocused(a.focus == 0),
		SecondaryButton(signUpLabel).WithFullWidth(true).WithFocused(a.focus == 1),
	}
}

// WithFocus highlights button i, or none when i is out of range.
func (a *AuthPrimaryCTA) WithFocus(i int) *AuthPrimaryCTA {
	a.focus = i
	return a
}

// AuthPlainText is a free-text field with caller-supplied copy.
func AuthPlainText(label, placeholder string) *TextField {
	return NewTextField(field.Plain).WithLabel(label).WithPlaceholder(placeholder)
}

// AuthPhoneText stores E.164 digits and shows them grouped.
func AuthPhoneText() *TextField {
	return NewTextField(field.Phone)
}

// AuthEmailText validates the email shape.
func AuthEmailText() *TextField {
	return NewTextField(field.Email)
}

// AuthPasswordText masks its value until revealed.
func AuthPasswordText() *TextField {
	return NewTextField(field.Password)
}
