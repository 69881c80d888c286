package display

import (
	"strconv"
	"strings"
)

const (
	maxPhoneLen     = 15
	maxPhoneLenPlus = 16
)

// localBlockSizes lists the grouping applied to the national part of a number.
// Digits beyond the last block are emitted as one trailing block.
var localBlockSizes = []int{3, 3, 4}

// SanitizePhone keeps only '+' and ASCII digits from user input and caps the
// result at the E.164 length (15 digits, 16 characters with a leading '+').
// A '+' after the first position is kept as-is; callers that need a strictly
// leading '+' filter it before calling.
func SanitizePhone(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '+' || isDigit(r) {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	limit := maxPhoneLen
	if strings.HasPrefix(cleaned, "+") {
		limit = maxPhoneLenPlus
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return cleaned
}

// PhoneDisplay is the grouped rendering of a raw phone value together with the
// cursor mapping between raw and display offsets. Offsets count characters.
type PhoneDisplay struct {
	raw       []rune
	text      []rune
	toDisplay []int
}

// FormatPhone renders raw (for example "+573012345678") as "+57 301 234 5678".
// The mapping is rebuilt on every call.
func FormatPhone(raw string) PhoneDisplay {
	rawRunes := []rune(raw)
	text := []rune(buildPhoneText(rawRunes))

	toDisplay := make([]int, len(rawRunes)+1)
	rawIndex, textIndex := 0, 0
	for textIndex < len(text) && rawIndex < len(rawRunes) {
		if text[textIndex] == ' ' {
			textIndex++
			continue
		}
		toDisplay[rawIndex] = textIndex
		rawIndex++
		textIndex++
	}
	toDisplay[len(rawRunes)] = len(text)

	return PhoneDisplay{raw: rawRunes, text: text, toDisplay: toDisplay}
}

// Text returns the display string.
func (p PhoneDisplay) Text() string {
	return string(p.text)
}

// Raw returns the value the display was built from.
func (p PhoneDisplay) Raw() string {
	return string(p.raw)
}

// RawToDisplay maps a cursor offset in the raw value to the display string.
func (p PhoneDisplay) RawToDisplay(offset int) int {
	if len(p.toDisplay) == 0 {
		return 0
	}
	return p.toDisplay[clamp(offset, 0, len(p.raw))]
}

// DisplayToRaw maps a cursor offset in the display string back to the raw value.
func (p PhoneDisplay) DisplayToRaw(offset int) int {
	limit := clamp(offset, 0, len(p.text))
	spaces := 0
	for _, r := range p.text[:limit] {
		if r == ' ' {
			spaces++
		}
	}
	return clamp(offset-spaces, 0, len(p.raw))
}

func buildPhoneText(raw []rune) string {
	if len(raw) == 0 {
		return ""
	}

	prefix := ""
	if raw[0] == '+' {
		prefix = "+"
	}

	digits := make([]rune, 0, len(raw))
	for _, r := range raw {
		if isDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return prefix
	}

	ccLen := CountryCodeLen(string(digits))
	countryCode := string(digits[:ccLen])
	local := digits[ccLen:]
	if len(local) == 0 {
		return prefix + countryCode
	}

	parts := make([]string, 0, len(localBlockSizes)+1)
	i := 0
	for _, size := range localBlockSizes {
		if i >= len(local) {
			break
		}
		end := min(i+size, len(local))
		parts = append(parts, string(local[i:end]))
		i += size
	}
	if i < len(local) {
		parts = append(parts, string(local[i:]))
	}

	return prefix + countryCode + " " + strings.Join(parts, " ")
}

// CountryCodeLen guesses how many leading digits form the calling code.
// It is a display heuristic, not a numbering-plan lookup: "1" (NANP) and "7"
// are single digit, 20..69 are two digits, everything else three.
func CountryCodeLen(digits string) int {
	switch {
	case len(digits) <= 1:
		return len(digits)
	case strings.HasPrefix(digits, "1"):
		return 1
	case len(digits) <= 2:
		return len(digits)
	case strings.HasPrefix(digits, "7"):
		return 1
	}

	if n, err := strconv.Atoi(digits[:2]); err == nil && n >= 20 && n <= 69 {
		return 2
	}
	return 3
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
