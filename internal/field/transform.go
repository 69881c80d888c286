package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/appnotresponding/rumbo/internal/display"
)

// MaskGlyph replaces each character of a hidden value.
const MaskGlyph = "•"

// OffsetMapping translates cursor offsets between the stored value and what is
// on screen. Offsets count characters.
type OffsetMapping interface {
	RawToDisplay(offset int) int
	DisplayToRaw(offset int) int
}

// Transformed is the on-screen form of a raw value.
type Transformed struct {
	Text    string
	Mapping OffsetMapping
}

// Transform is the visual transformation a field applies to its value.
type Transform int

const (
	TransformNone Transform = iota
	TransformPhone
	TransformMask
)

var transformNames = map[Transform]string{
	TransformNone:  "none",
	TransformPhone: "phone",
	TransformMask:  "mask",
}

func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return fmt.Sprintf("transform(%d)", int(t))
}

// ParseTransform maps a configured transform name. An empty name is none.
func ParseTransform(name string) (Transform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TransformNone, nil
	}
	for t, n := range transformNames {
		if n == name {
			return t, nil
		}
	}
	return TransformNone, fmt.Errorf("unknown transform %q", name)
}

// Sanitize normalises user input before it is stored as the raw value.
func (t Transform) Sanitize(input string) string {
	if t == TransformPhone {
		return display.SanitizePhone(input)
	}
	return input
}

// Apply renders raw for display.
func (t Transform) Apply(raw string) Transformed {
	switch t {
	case TransformPhone:
		formatted := display.FormatPhone(raw)
		return Transformed{Text: formatted.Text(), Mapping: formatted}
	case TransformMask:
		n := utf8.RuneCountInString(raw)
		return Transformed{Text: strings.Repeat(MaskGlyph, n), Mapping: identity(n)}
	default:
		return Transformed{Text: raw, Mapping: identity(utf8.RuneCountInString(raw))}
	}
}

// identity maps offsets onto themselves, clamped to the value length.
type identity int

func (n identity) RawToDisplay(offset int) int { return n.clamp(offset) }
func (n identity) DisplayToRaw(offset int) int { return n.clamp(offset) }

func (n identity) clamp(offset int) int {
	return max(0, min(offset, int(n)))
}
