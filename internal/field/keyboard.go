package field

import (
	"fmt"
	"strings"
)

// Keyboard is the input mode a field asks the host for.
type Keyboard int

const (
	KeyboardText Keyboard = iota
	KeyboardEmail
	KeyboardPhone
	KeyboardPassword
	KeyboardNumber
)

var keyboardNames = map[Keyboard]string{
	KeyboardText:     "text",
	KeyboardEmail:    "email",
	KeyboardPhone:    "phone",
	KeyboardPassword: "password",
	KeyboardNumber:   "number",
}

func (k Keyboard) String() string {
	if name, ok := keyboardNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keyboard(%d)", int(k))
}

// Accepts reports whether r can be typed with this keyboard.
func (k Keyboard) Accepts(r rune) bool {
	switch k {
	case KeyboardPhone:
		return r == '+' || isASCIIDigit(r)
	case KeyboardNumber:
		return isASCIIDigit(r)
	default:
		return r >= ' '
	}
}

// ParseKeyboard maps a configured keyboard name. An empty name is text.
func ParseKeyboard(name string) (Keyboard, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeyboardText, nil
	}
	for k, n := range keyboardNames {
		if n == name {
			return k, nil
		}
	}
	return KeyboardText, fmt.Errorf("unknown keyboard %q", name)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
