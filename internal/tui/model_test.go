package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/appnotresponding/rumbo/internal/field"
)

var fixedNow = time.Date(2026, time.October, 17, 12, 30, 0, 0, time.UTC)

func newTestModel() Model {
	return NewModel(Options{Now: func() time.Time { return fixedNow }})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	require.Equal(t, ScreenSignUp, m.Screen())
	require.Zero(t, m.Focus())
	require.Zero(t, m.Rating())
	require.False(t, m.CanSubmit())
	require.Nil(t, m.Init())
	require.Len(t, m.Messages(), 3)

	view := plainView(m)
	for _, want := range []string{formTitle, "Nombre", "Celular", "Correo electrónico", "Contraseña", ratingLabel, submitLabel} {
		require.Contains(t, view, want)
	}
}

func TestFocusCycles(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m = send(m, keyOf(tea.KeyShiftTab))
	require.Equal(t, focusSubmit, m.Focus())

	m = send(m, keyOf(tea.KeyTab))
	require.Zero(t, m.Focus())

	m = send(m, keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	require.Equal(t, 2, m.Focus())
}

func TestPhoneTypingKeepsRawValueAndCursor(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyTab), runes("+57 301"))
	require.Equal(t, "+57301", m.Value("phone"))
	require.Equal(t, 6, m.Cursor("phone"))

	m = send(m, keyOf(tea.KeyLeft), keyOf(tea.KeyLeft), keyOf(tea.KeyLeft), runes("9"))
	require.Equal(t, "+579301", m.Value("phone"))
	require.Equal(t, 4, m.Cursor("phone"))

	m = send(m, keyOf(tea.KeyBackspace))
	require.Equal(t, "+57301", m.Value("phone"))
	require.Equal(t, 3, m.Cursor("phone"))

	m = send(m, keyOf(tea.KeyHome), keyOf(tea.KeyDelete))
	require.Equal(t, "57301", m.Value("phone"))
	require.Zero(t, m.Cursor("phone"))

	m = send(m, runes("+"), keyOf(tea.KeyEnd), runes("2345678"))
	require.Equal(t, "+573012345678", m.Value("phone"))
	require.Contains(t, plainView(m), "+57 301 234 5678")
}

func TestPhonePlusOnlyLeads(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyTab), runes("3+0"))
	require.Equal(t, "30", m.Value("phone"))

	m = send(m, keyOf(tea.KeyHome), runes("+"))
	require.Equal(t, "+30", m.Value("phone"))
	require.Equal(t, 1, m.Cursor("phone"))
}

func TestPasswordRevealToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m = send(m, keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeyTab), runes("1Manzana!"))
	require.NotContains(t, plainView(m), "1Manzana!")
	require.Contains(t, plainView(m), strings.Repeat(field.MaskGlyph, 9))

	m = send(m, keyOf(tea.KeyCtrlR))
	require.Contains(t, plainView(m), "1Manzana!")
}

func TestRatingRow(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	for i := 0; i < focusRating; i++ {
		m = send(m, keyOf(tea.KeyTab))
	}
	require.Equal(t, focusRating, m.Focus())

	m = send(m, runes("4"))
	require.InDelta(t, 4.0, m.Rating(), 0)
	require.Contains(t, plainView(m), "Toca para valorar: 4/5")

	m = send(m, keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	require.InDelta(t, 5.0, m.Rating(), 0)

	m = send(m, keyOf(tea.KeyLeft))
	require.InDelta(t, 4.0, m.Rating(), 0)

	m = send(m, runes("9"))
	require.InDelta(t, 5.0, m.Rating(), 0)

	m = send(m, runes("0"))
	require.InDelta(t, 1.0, m.Rating(), 0)
}

func TestSubmitInvalidShowsErrors(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyTab), keyOf(tea.KeyTab), runes("johndoe@mail"))
	updated, cmd := m.Update(keyOf(tea.KeyCtrlS))
	m = updated.(Model)

	require.Nil(t, cmd)
	require.Zero(t, m.Focus())
	view := plainView(m)
	require.Contains(t, view, field.RequiredMessage)
	require.Contains(t, view, "Correo electrónico inválido")

	m = send(m, runes("Ana"))
	require.NotContains(t, m.errors, "name")
}

func TestSubmitValidForm(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(),
		runes("Ana María"), keyOf(tea.KeyTab),
		runes("+573012345678"), keyOf(tea.KeyTab),
		runes("ana@mail.com"), keyOf(tea.KeyTab),
		runes("1Manzana!"), keyOf(tea.KeyTab),
		runes("5"), keyOf(tea.KeyTab),
	)
	require.True(t, m.CanSubmit())
	require.Equal(t, focusSubmit, m.Focus())

	updated, cmd := m.Update(keyOf(tea.KeyEnter))
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Contains(t, plainView(m), submittingMsg)

	m = send(m, submitDoneMsg{})
	require.True(t, m.Registered())
	require.Contains(t, plainView(m), registeredMsg)
}

func TestMouseClickPlacesCursorThroughDisplayMapping(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyTab), runes("+573012345678"), keyOf(tea.KeyShiftTab))
	require.Zero(t, m.Focus())

	// Title and blank line, then the four-line name field, then the phone
	// field whose value sits under its label and top border.
	phoneValueY := 2 + 4 + fieldValueRow
	m = send(m, tea.MouseMsg{X: fieldValueColumn + 4, Y: phoneValueY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	require.Equal(t, 1, m.Focus())
	require.Equal(t, 3, m.Cursor("phone"))
}

func TestMouseClickOnDigitLandsBeforeIt(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyTab), runes("+573012345678"), keyOf(tea.KeyShiftTab))

	// "+57 301 234 5678": display offset 5 is the "0" of "301", raw offset 4.
	phoneValueY := 2 + 4 + fieldValueRow
	m = send(m, tea.MouseMsg{X: fieldValueColumn + 5, Y: phoneValueY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, 4, m.Cursor("phone"))

	line := strings.Split(plainView(m), "\n")[phoneValueY]
	require.Equal(t, "0", string([]rune(line)[fieldValueColumn+5]))
}

func TestChatScreenSendsMessages(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), keyOf(tea.KeyCtrlT))
	require.Equal(t, ScreenChat, m.Screen())
	require.Contains(t, plainView(m), "Carlos Pérez")

	m = send(m, runes("  "), keyOf(tea.KeyEnter))
	require.Len(t, m.Messages(), 3)
	m = send(m, keyOf(tea.KeyBackspace), keyOf(tea.KeyBackspace))

	m = send(m, runes("hola"), keyOf(tea.KeySpace), runes("Carlos"))
	require.Equal(t, "hola Carlos", m.Draft())

	m = send(m, keyOf(tea.KeyEnter))
	require.Empty(t, m.Draft())
	require.Len(t, m.Messages(), 4)
	last := m.Messages()[3]
	require.True(t, last.FromUser)
	require.Equal(t, "hola Carlos", last.Text)
	require.Contains(t, plainView(m), "hola Carlos")

	m = send(m, keyOf(tea.KeyCtrlT))
	require.Equal(t, ScreenSignUp, m.Screen())
}

func TestQuitClearsView(t *testing.T) {
	t.Parallel()

	updated, cmd := newTestModel().Update(keyOf(tea.KeyEsc))
	require.NotNil(t, cmd)
	require.Empty(t, updated.(Model).View())
}

func TestWindowSizeLimitsWidth(t *testing.T) {
	t.Parallel()

	m := send(newTestModel(), tea.WindowSizeMsg{Width: 40, Height: 30})
	for _, line := range strings.Split(plainView(m), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 40, line)
	}
}

func TestUpdateLeavesEarlierModelsUntouched(t *testing.T) {
	t.Parallel()

	before := send(newTestModel(), runes("Ana"))
	after := send(before, keyOf(tea.KeyBackspace), runes("ita"))
	require.Equal(t, "Ana", before.Value("name"))
	require.Equal(t, 3, before.Cursor("name"))
	require.Equal(t, "Anita", after.Value("name"))

	rejected := send(newTestModel(), keyOf(tea.KeyCtrlS))
	require.Contains(t, rejected.errors, "name")
	edited := send(rejected, runes("A"))
	require.NotContains(t, edited.errors, "name")
	require.Contains(t, rejected.errors, "name")
	require.Empty(t, rejected.Value("name"))

	chat := send(newTestModel(), keyOf(tea.KeyCtrlT), runes("hola"))
	sent := send(chat, keyOf(tea.KeyEnter))
	require.Equal(t, "hola", chat.Draft())
	require.Len(t, chat.Messages(), 3)
	require.Len(t, sent.Messages(), 4)
}
