package tui

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appnotresponding/rumbo/internal/display"
	"github.com/appnotresponding/rumbo/internal/field"
	"github.com/appnotresponding/rumbo/internal/models"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitDoneMsg:
		m.submitting = false
		m.registered = true
		m.log.WithFields(map[string]any{"rating": m.rating}).Info("sign-up submitted")
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screen):
		if m.screen == ScreenSignUp {
			m.screen = ScreenChat
		} else {
			m.screen = ScreenSignUp
		}
		m.log.WithFields(map[string]any{"screen": m.screen.String()}).Debug("switched screen")
		return m, nil
	}

	if m.screen == ScreenChat {
		return m.handleChatKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ownFields()
	f := m.focusedField()

	switch {
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Enter):
		if m.focus == focusSubmit {
			return m.submit()
		}
		m.focus = (m.focus + 1) % focusCount
	case key.Matches(msg, m.keys.Left):
		if f != nil {
			f.cursor = max(0, f.cursor-1)
		} else if m.focus == focusRating {
			m.selectStar(int(m.rating) - 1)
		}
	case key.Matches(msg, m.keys.Right):
		if f != nil {
			f.cursor = min(len(f.value), f.cursor+1)
		} else if m.focus == focusRating {
			m.selectStar(int(m.rating) + 1)
		}
	case key.Matches(msg, m.keys.Home):
		if f != nil {
			f.cursor = 0
		}
	case key.Matches(msg, m.keys.End):
		if f != nil {
			f.cursor = len(f.value)
		}
	case key.Matches(msg, m.keys.Backspace):
		if f != nil && f.cursor > 0 {
			f.value = append(f.value[:f.cursor-1:f.cursor-1], f.value[f.cursor:]...)
			f.cursor--
			m.edited(f)
		}
	case key.Matches(msg, m.keys.Delete):
		if f != nil && f.cursor < len(f.value) {
			f.value = append(f.value[:f.cursor:f.cursor], f.value[f.cursor+1:]...)
			m.edited(f)
		}
	case key.Matches(msg, m.keys.Reveal):
		if f != nil {
			f.revealed = !f.revealed
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		switch {
		case f != nil:
			f.insert(text)
			m.edited(f)
		case m.focus == focusRating:
			if star, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
				m.selectStar(star)
			}
		}
	}
	return m, nil
}

// insert types text at the cursor. Characters the field's keyboard rejects
// are dropped, and the cursor lands after what was kept.
func (f *formField) insert(text string) {
	prefix := []rune(f.preset.Sanitize(string(f.value[:f.cursor]) + text))
	f.value = []rune(f.preset.Sanitize(string(prefix) + string(f.value[f.cursor:])))
	f.cursor = min(len(prefix), len(f.value))
}

// edited clears the submission error of a field once the user changes it.
func (m *Model) edited(f *formField) {
	m.registered = false
	if _, ok := m.errors[f.key]; !ok {
		return
	}
	errs := make(field.FormErrors, len(m.errors))
	for key, message := range m.errors {
		if key != f.key {
			errs[key] = message
		}
	}
	m.errors = errs
}

func (m *Model) selectStar(star int) {
	m.rating = display.SelectStar(star, display.DefaultMaxStars)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.errors = m.registry.ValidateSignUp(m.Form())
	if !m.errors.Valid() {
		m.log.WithFields(map[string]any{"errors": len(m.errors)}).Debug("sign-up rejected")
		for i, f := range m.fields {
			if _, bad := m.errors[f.key]; bad {
				m.focus = i
				break
			}
		}
		return m, nil
	}

	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, tea.Tick(submitDelay, func(time.Time) tea.Msg { return submitDoneMsg{} }))
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		text := strings.TrimSpace(string(m.draft))
		if text == "" {
			return m, nil
		}
		m.thread.Messages = append(slices.Clip(m.thread.Messages), models.NewChatMessage("", text, true, m.now()))
		m.draft = nil
	case key.Matches(msg, m.keys.Backspace):
		if len(m.draft) > 0 {
			m.draft = m.draft[:len(m.draft)-1]
		}
	case msg.Type == tea.KeyRunes:
		m.draft = append(slices.Clip(m.draft), msg.Runes...)
	case msg.Type == tea.KeySpace:
		m.draft = append(slices.Clip(m.draft), ' ')
	}
	return m, nil
}

// handleMouse focuses the clicked field and places the cursor under the
// pointer, translating the screen column through the field's display mapping.
// A click on the rating row selects the star under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.screen != ScreenSignUp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	hit, ok := m.hitTest(msg.Y)
	if !ok {
		return m
	}
	m.ownFields()
	m.focus = hit.focus

	switch {
	case hit.focus < len(m.fields) && hit.row == fieldValueRow:
		f := m.fields[hit.focus]
		column := max(0, msg.X-fieldValueColumn)
		f.cursor = f.display().Mapping.DisplayToRaw(column)
	case hit.focus == focusRating && hit.row == ratingStarsRow:
		// Stars are drawn one column apart.
		if msg.X%2 == 0 {
			m.selectStar(msg.X/2 + 1)
		}
	}
	return m
}
