package display

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxInitials = 2

// Initials derives the avatar fallback text from a display name: the first two
// characters of the trimmed name, upper-cased. Word boundaries are ignored, so
// "Ana Maria" gives "AN". ok is false when nothing printable remains and the
// caller should show the generic icon instead.
func Initials(name string) (initials string, ok bool) {
	trimmed := strings.TrimSpace(name)

	var b strings.Builder
	g := uniseg.NewGraphemes(trimmed)
	for n := 0; n < maxInitials && g.Next(); n++ {
		b.WriteString(g.Str())
	}

	out := cases.Upper(language.Und).String(b.String())
	if strings.TrimSpace(out) == "" {
		return "", false
	}
	return out, true
}
