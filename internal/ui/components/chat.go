package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/appnotresponding/rumbo/internal/models"
	"github.com/appnotresponding/rumbo/internal/ui"
)

const (
	defaultChatWidth = 48
	imageMarker      = "▨ imagen"
)

func chatWidth(ctx RenderContext) int {
	if ctx.MaxWidth > 0 {
		return ctx.MaxWidth
	}
	return defaultChatWidth
}

// ChatBubble renders one message. The user's messages sit on the right in the
// secondary colour; everyone else's on the left in primary. Bubbles take three
// quarters of the row.
type ChatBubble struct {
	BaseComponent
	message models.ChatMessage
}

// NewChatBubble creates a bubble for message.
func NewChatBubble(message models.ChatMessage) *ChatBubble {
	return &ChatBubble{BaseComponent: NewBaseComponent(), message: message}
}

// View renders the bubble with the default theme.
func (b *ChatBubble) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bubble with the given theme context.
func (b *ChatBubble) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	row := chatWidth(ctx)
	width := max(8, row*3/4)

	bg, fg := c.Primary, c.OnPrimary
	align := lipgloss.Left
	if b.message.FromUser {
		bg, fg = c.Secondary, c.OnSecondary
		align = lipgloss.Right
	}

	inner := width - 2
	lines := make([]string, 0, 3)
	if b.message.Sender != "" && !b.message.FromUser {
		lines = append(lines, ctx.Theme.Typography.LabelLarge.Render(b.message.Sender))
	}
	if b.message.ImageURL != "" {
		lines = append(lines, imageMarker)
	}
	lines = append(lines, ansi.Wordwrap(b.message.Text, inner, ""))

	bubble := b.Overlay(lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Width(width).
		Align(align), ctx.Theme).
		Render(strings.Join(lines, "\n"))

	return lipgloss.PlaceHorizontal(row, align, bubble)
}

// Message returns the message the bubble shows.
func (b *ChatBubble) Message() models.ChatMessage {
	return b.message
}

// ChatListItem is a row of the inbox: avatar, contact and optional status on
// top, last message and timestamp below.
type ChatListItem struct {
	BaseComponent
	contact     string
	status      string
	lastMessage string
	timestamp   string
	avatar      ui.Renderable
}

// NewChatListItem defaults the avatar to the contact's initials.
func NewChatListItem(contact, lastMessage, timestamp string) *ChatListItem {
	return &ChatListItem{
		BaseComponent: NewBaseComponent(),
		contact:       contact,
		lastMessage:   lastMessage,
		timestamp:     timestamp,
		avatar:        NewAvatar(contact),
	}
}

// ChatListItemFor builds the inbox row for a thread.
func ChatListItemFor(thread models.ChatThread, stamp func(models.ChatMessage) string) *ChatListItem {
	var text, when string
	if last, ok := thread.Last(); ok {
		text, when = last.Text, stamp(last)
	}

	return NewChatListItem(thread.Contact, text, when).
		WithStatus(thread.Status).
		WithAvatar(NewAvatar(thread.Contact).WithPicture(thread.PictureURL).WithOnline(thread.Online))
}

// View renders the inbox row with the default theme.
func (i *ChatListItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the inbox row with the given theme context.
func (i *ChatListItem) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	typo := ctx.Theme.Typography

	avatar := renderChild(i.avatar, ctx)
	width := max(10, chatWidth(ctx)-lipgloss.Width(avatar)-1)

	title := typo.TitleSmall.Foreground(c.OnSurface).Render(i.contact)
	if i.status != "" {
		title += " " + typo.LabelMedium.Foreground(c.Primary).Render(i.status)
	}

	stamp := typo.LabelSmall.Foreground(c.OnSurfaceVariant).Render(i.timestamp)
	room := max(1, width-lipgloss.Width(stamp)-1)
	message := typo.BodySmall.Foreground(c.OnSurfaceVariant).Render(ansi.Truncate(i.lastMessage, room, ellipsis))
	gap := max(1, width-lipgloss.Width(message)-lipgloss.Width(stamp))
	second := message + strings.Repeat(" ", gap) + stamp

	body := lipgloss.JoinVertical(lipgloss.Left, title, second)
	row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", body)
	return i.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(row)
}

// WithStatus sets the line shown under the contact name.
func (i *ChatListItem) WithStatus(status string) *ChatListItem {
	i.status = status
	return i
}

// WithAvatar replaces the default initials avatar.
func (i *ChatListItem) WithAvatar(avatar ui.Renderable) *ChatListItem {
	if avatar != nil {
		i.avatar = avatar
	}
	return i
}

// Composer action glyphs, in display order.
var composerActions = []string{"▣", "⌖", "♪"}

// ComposerActionLabels name the composer actions for help text.
var ComposerActionLabels = []string{"Adjuntar imagen", "Enviar ubicación", "Grabar audio"}

const (
	composerPlaceholder = "Mensaje"
	sendGlyph           = "➤"
)

// MessageComposer is the chat input: text on top, actions and send below.
type MessageComposer struct {
	BaseComponent
	value   string
	focused bool
}

// NewMessageComposer creates an empty composer.
func NewMessageComposer() *MessageComposer {
	return &MessageComposer{BaseComponent: NewBaseComponent()}
}

// View renders the composer with the default theme.
func (m *MessageComposer) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the composer with the given theme context.
func (m *MessageComposer) ViewWithContext(ctx RenderContext) string {
	c := ctx.Theme.Colors
	width := chatWidth(ctx)
	inner := max(4, width-4)

	text := lipgloss.NewStyle().Foreground(c.OnSurface).Render(ansi.Wordwrap(m.value, inner, ""))
	if m.value == "" {
		text = lipgloss.NewStyle().Foreground(c.OnSurfaceVariant).Faint(true).Render(composerPlaceholder)
	}
	if m.focused {
		text += cursorStyle(c).Render(" ")
	}

	actions := lipgloss.NewStyle().Foreground(c.OnSurfaceVariant).Render(strings.Join(composerActions, "  "))
	send := lipgloss.NewStyle().Background(c.Secondary).Foreground(c.OnSecondary).Padding(0, 1).Render(sendGlyph)
	gap := max(1, inner-lipgloss.Width(actions)-lipgloss.Width(send))
	bottom := actions + strings.Repeat(" ", gap) + send

	box := lipgloss.NewStyle().
		Background(c.SurfaceContainerHigh).
		Border(ctx.Theme.Shapes.Medium).
		BorderForeground(c.OutlineVariant).
		Padding(0, 1).
		Width(width - 2)
	return m.Overlay(box, ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, text, bottom))
}

// WithValue sets the draft text.
func (m *MessageComposer) WithValue(value string) *MessageComposer {
	m.value = value
	return m
}

// WithFocused sets the focused state.
func (m *MessageComposer) WithFocused(focused bool) *MessageComposer {
	m.focused = focused
	return m
}

// CanSend reports whether there is something other than whitespace to send.
func (m *MessageComposer) CanSend() bool {
	return strings.TrimSpace(m.value) != ""
}

// Value returns the draft text.
func (m *MessageComposer) Value() string {
	return m.value
}
