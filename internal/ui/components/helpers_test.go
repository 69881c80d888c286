package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// plain strips styling and trailing padding so assertions see only text.
func plain(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func lipglossWidth(s string) int {
	return ansi.StringWidth(s)
}
