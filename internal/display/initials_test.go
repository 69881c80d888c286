package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{name: " samu p ", want: "SA", ok: true},
		{name: "Ana Maria", want: "AN", ok: true},
		{name: "x", want: "X", ok: true},
		{name: "élan", want: "ÉL", ok: true},
		{name: "SP", want: "SP", ok: true},
		{name: "", ok: false},
		{name: "   ", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Initials(tc.name)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInitialsKeepsCombiningMarksTogether(t *testing.T) {
	t.Parallel()

	// "e" followed by U+0301 is one character on screen.
	got, ok := Initials("e\u0301mile")
	require.True(t, ok)
	require.Equal(t, "E\u0301M", got)
}
