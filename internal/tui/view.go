package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/display"
	"github.com/appnotresponding/rumbo/internal/field"
	"github.com/appnotresponding/rumbo/internal/models"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

const (
	formTitle     = "Crea tu cuenta"
	ratingLabel   = "¿Qué tan útil te parece Rumbo?"
	submitLabel   = "Registrarse"
	submittingMsg = "Registrando…"
	registeredMsg = "Tu cuenta fue creada."

	chatHistory = 6
)

// Layout of a text field block: label, top border, value line. The value
// starts after the left border and one column of padding.
const (
	fieldValueRow    = 2
	fieldValueColumn = 2
	ratingStarsRow   = 1
)

// View renders the current screen followed by the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.formView()
	if m.screen == ScreenChat {
		body = m.chatView()
	}
	return body + "\n\n" + m.help.View(m.keys)
}

// block is a vertical slice of the form; focus is -1 when it is not focusable.
type block struct {
	focus int
	view  string
}

type hit struct {
	focus int
	row   int
}

func (m Model) formView() string {
	blocks := m.formBlocks()
	views := make([]string, len(blocks))
	for i, b := range blocks {
		views[i] = b.view
	}
	return strings.Join(views, "\n")
}

func (m Model) formBlocks() []block {
	ctx := m.renderContext()
	theme := ctx.Theme

	blocks := []block{{focus: -1, view: titleStyle(theme).Render(formTitle) + "\n"}}
	for i, f := range m.fields {
		blocks = append(blocks, block{focus: i, view: m.textField(f, i).ViewWithContext(ctx)})
	}

	highlight := 0
	if m.focus == focusRating {
		highlight = max(1, int(m.rating))
	}
	stars := components.NewRatingStars(m.rating).WithInteractive(true).WithHighlight(highlight)
	blocks = append(blocks, block{focus: focusRating, view: lipgloss.JoinVertical(lipgloss.Left,
		labelStyle(theme, m.focus == focusRating).Render(ratingLabel),
		stars.ViewWithContext(ctx),
		faintStyle(theme).Render(components.RatingPrompt(m.rating, display.DefaultMaxStars)),
	)})

	button := components.PrimaryButton(submitLabel).
		WithFullWidth(true).
		WithDisabled(!m.CanSubmit()).
		WithLoading(m.submitting).
		WithFocused(m.focus == focusSubmit)
	blocks = append(blocks, block{focus: focusSubmit, view: "\n" + button.ViewWithContext(ctx)})

	if status := m.status(ctx); status != "" {
		blocks = append(blocks, block{focus: -1, view: status})
	}
	return blocks
}

func (m Model) textField(f *formField, index int) *components.TextField {
	return components.NewTextField(f.preset).
		WithValue(string(f.value)).
		WithCursor(f.cursor).
		WithRevealed(f.revealed).
		WithFocused(m.focus == index).
		WithError(m.errors[f.key])
}

func (f *formField) display() field.Transformed {
	return components.NewTextField(f.preset).WithValue(string(f.value)).WithRevealed(f.revealed).Display()
}

func (m Model) status(ctx components.RenderContext) string {
	switch {
	case m.submitting:
		return m.spinner.View() + " " + submittingMsg
	case m.registered:
		return components.SuccessAlert(registeredMsg).ViewWithContext(ctx)
	case m.errors["form"] != "":
		return components.ErrorAlert(m.errors["form"]).ViewWithContext(ctx)
	default:
		return ""
	}
}

// hitTest finds the focusable block drawn at screen row y and the row within it.
func (m Model) hitTest(y int) (hit, bool) {
	top := 0
	for _, b := range m.formBlocks() {
		height := lipgloss.Height(b.view)
		if y >= top && y < top+height {
			if b.focus < 0 {
				return hit{}, false
			}
			return hit{focus: b.focus, row: y - top}, true
		}
		top += height
	}
	return hit{}, false
}

func (m Model) chatView() string {
	ctx := m.renderContext()
	theme := ctx.Theme

	avatar := components.NewAvatar(m.thread.Contact).
		WithPicture(m.thread.PictureURL).
		WithOnline(m.thread.Online)
	title := titleStyle(theme).Render(m.thread.Contact)
	header := lipgloss.JoinHorizontal(lipgloss.Center, avatar.ViewWithContext(ctx), " ", title)

	messages := m.thread.Messages
	if len(messages) > chatHistory {
		messages = messages[len(messages)-chatHistory:]
	}

	sections := []string{header, components.NewDivider().ViewWithContext(ctx)}
	for _, msg := range messages {
		sections = append(sections, components.NewChatBubble(msg).ViewWithContext(ctx), m.stamp(msg, ctx))
	}
	composer := components.NewMessageComposer().WithValue(string(m.draft)).WithFocused(true)
	sections = append(sections, composer.ViewWithContext(ctx))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) stamp(msg models.ChatMessage, ctx components.RenderContext) string {
	align := lipgloss.Left
	if msg.FromUser {
		align = lipgloss.Right
	}
	text := faintStyle(ctx.Theme).Render(models.RelativeStamp(msg.SentAt, m.now()))
	return lipgloss.PlaceHorizontal(ctx.MaxWidth, align, text)
}
