package tui

import "time"

// Screen selects what the preview shows.
type Screen int

const (
	ScreenSignUp Screen = iota
	ScreenChat
)

func (s Screen) String() string {
	if s == ScreenChat {
		return "chat"
	}
	return "signup"
}

// submitDelay is how long the submit button shows its loading state.
const submitDelay = 600 * time.Millisecond

// submitDoneMsg ends the simulated registration request.
type submitDoneMsg struct{}
