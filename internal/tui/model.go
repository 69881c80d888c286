package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/appnotresponding/rumbo/internal/field"
	"github.com/appnotresponding/rumbo/internal/logger"
	"github.com/appnotresponding/rumbo/internal/models"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

// Focus positions after the text fields.
const (
	focusRating = iota + 4
	focusSubmit
	focusCount
)

const (
	defaultWidth = 48
	maxWidth     = 72
)

// formField is the editable state of one sign-up input. The value is kept raw
// and sanitised; the cursor counts runes of the raw value.
type formField struct {
	key      string
	preset   field.Preset
	value    []rune
	cursor   int
	revealed bool
}

// Options configures a preview model. Zero values fall back to defaults.
type Options struct {
	Theme    components.Theme
	Locale   language.Tag
	Registry *field.Registry
	Logger   *logger.Logger
	Now      func() time.Time
	Screen   Screen
}

// Model is the Bubbletea state of the interactive component preview: the
// sign-up form and a chat thread.
type Model struct {
	ctx      components.RenderContext
	registry *field.Registry
	log      *logger.Logger
	now      func() time.Time
	keys     keyMap
	help     help.Model
	spinner  spinner.Model

	screen Screen
	width  int
	height int

	fields     []*formField
	focus      int
	rating     float64
	errors     field.FormErrors
	submitting bool
	registered bool

	thread models.ChatThread
	draft  []rune

	quitting bool
}

// NewModel builds the preview with empty fields and the first sample thread.
func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme.Colors == (components.ColorScheme{}) {
		theme = components.DefaultTheme()
	}
	ctx := components.NewContext(theme)
	if opts.Locale != language.Und {
		ctx = ctx.WithLocale(opts.Locale)
	}

	registry := opts.Registry
	if registry == nil {
		registry = field.NewRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	preset := func(name string) field.Preset {
		p, _ := registry.Get(name)
		return p
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(theme.Colors.Primary)

	m := Model{
		ctx:      ctx,
		registry: registry,
		log:      opts.Logger.Component("preview"),
		now:      now,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		screen:   opts.Screen,
		fields: []*formField{
			{key: "name", preset: preset(field.NamePlain)},
			{key: "phone", preset: preset(field.NamePhone)},
			{key: "email", preset: preset(field.NameEmail)},
			{key: "password", preset: preset(field.NamePassword)},
		},
		errors: field.FormErrors{},
		thread: models.SampleThreads(now())[0],
	}
	return m
}

// Init has no startup work; the preview waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen reports the visible screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Focus reports the focused position: a field index, the rating row or the
// submit button.
func (m Model) Focus() int {
	return m.focus
}

// Value returns the raw value of the field with the given form key.
func (m Model) Value(key string) string {
	if f := m.field(key); f != nil {
		return string(f.value)
	}
	return ""
}

// Cursor returns the raw cursor offset of the field with the given form key.
func (m Model) Cursor(key string) int {
	if f := m.field(key); f != nil {
		return f.cursor
	}
	return 0
}

// Rating is the value selected on the rating row.
func (m Model) Rating() float64 {
	return m.rating
}

// Form returns the current sign-up values.
func (m Model) Form() field.SignUp {
	return field.SignUp{
		Name:     m.Value("name"),
		Phone:    m.Value("phone"),
		Email:    m.Value("email"),
		Password: m.Value("password"),
	}
}

// CanSubmit reports whether the form validates.
func (m Model) CanSubmit() bool {
	return m.registry.ValidateSignUp(m.Form()).Valid()
}

// Registered reports whether a submission completed.
func (m Model) Registered() bool {
	return m.registered
}

// Messages returns the chat thread shown on the chat screen.
func (m Model) Messages() []models.ChatMessage {
	return m.thread.Messages
}

// Draft returns the unsent composer text.
func (m Model) Draft() string {
	return string(m.draft)
}

func (m Model) field(key string) *formField {
	for _, f := range m.fields {
		if f.key == key {
			return f
		}
	}
	return nil
}

// ownFields gives m private copies of its fields before an edit, so models
// returned by earlier updates keep their values.
func (m *Model) ownFields() {
	fields := make([]*formField, len(m.fields))
	for i, f := range m.fields {
		copied := *f
		fields[i] = &copied
	}
	m.fields = fields
}

func (m Model) focusedField() *formField {
	if m.focus >= 0 && m.focus < len(m.fields) {
		return m.fields[m.focus]
	}
	return nil
}

func (m Model) renderContext() components.RenderContext {
	width := defaultWidth
	if m.width > 0 {
		width = min(m.width, maxWidth)
	}
	return m.ctx.WithMaxWidth(width)
}
