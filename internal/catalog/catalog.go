// Package catalog renders a preview of every component, the terminal
// counterpart of a design-system sheet, and keeps it under snapshot.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"

	"github.com/appnotresponding/rumbo/internal/logger"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

// DefaultWidth is the width previews are laid out in.
const DefaultWidth = 60

// ReferenceTime anchors dates and chat timestamps so renders are repeatable.
var ReferenceTime = time.Date(2026, time.October, 17, 12, 30, 0, 0, time.UTC)

// Options selects how the catalog is rendered. Zero values fall back to the
// defaults.
type Options struct {
	Theme  components.Theme
	Locale language.Tag
	Width  int
	Now    time.Time
	Logger *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Theme.Colors == (components.ColorScheme{}) {
		o.Theme = components.DefaultTheme()
	}
	if o.Locale == language.Und {
		o.Locale = components.DefaultLocale
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Now.IsZero() {
		o.Now = ReferenceTime
	}
	return o
}

func (o Options) context() components.RenderContext {
	return components.NewContext(o.Theme).WithLocale(o.Locale).WithMaxWidth(o.Width)
}

// Section is one titled block of the catalog.
type Section struct {
	Title    string
	Previews []Preview
}

// Preview is a single named component render.
type Preview struct {
	Name   string
	Render func(ctx components.RenderContext) string
}

// Render draws every section with styling for the options' theme.
func Render(opts Options) string {
	opts = opts.withDefaults()
	ctx := opts.context()
	log := opts.Logger.Component("catalog")

	var b strings.Builder
	fmt.Fprintf(&b, "Rumbo · %s · %s\n", opts.Theme.Name(), opts.Locale)
	for _, section := range Sections(opts.Now) {
		b.WriteString("\n")
		b.WriteString(sectionTitle(section.Title, opts.Width))
		b.WriteString("\n")
		for _, preview := range section.Previews {
			b.WriteString("\n")
			b.WriteString(preview.Name)
			b.WriteString("\n")
			b.WriteString(preview.Render(ctx))
			b.WriteString("\n")
		}
		if log.DebugEnabled() {
			log.WithFields(map[string]any{"section": section.Title, "previews": len(section.Previews)}).Debug("rendered section")
		}
	}
	return b.String()
}

// Plain renders the catalog without escape sequences or trailing padding. It
// is the form stored in snapshots.
func Plain(opts Options) string {
	return Strip(Render(opts))
}

// Strip removes escape sequences and trailing spaces from every line.
func Strip(rendered string) string {
	lines := strings.Split(ansi.Strip(rendered), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(title string, width int) string {
	head := "━━ " + title + " "
	if fill := width - ansi.StringWidth(head); fill > 0 {
		head += strings.Repeat("━", fill)
	}
	return head
}
