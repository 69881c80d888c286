package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhoneCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "format", args: []string{"phone", "format", "+57 (301) 234-5678"}, want: "+57 301 234 5678\n"},
		{name: "format empty", args: []string{"phone", "format", "abc"}, want: "\n"},
		{name: "sanitize", args: []string{"phone", "sanitize", "+57 (301) 234-5678"}, want: "+573012345678\n"},
		{name: "sanitize caps length", args: []string{"phone", "sanitize", "+12345678901234567"}, want: "+123456789012345\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, output)
		})
	}
}

func TestPhoneRegion(t *testing.T) {
	output, err := executeCommand(t, "phone", "region", "+57 301 234 5678")
	require.NoError(t, err)
	require.Contains(t, output, "region: CO")
	require.Contains(t, output, "country code: 57")
	require.Contains(t, output, "e164: +573012345678")

	_, err = executeCommand(t, "phone", "region", "3012345678")
	require.Error(t, err)
	require.Contains(t, err.Error(), "international prefix")
}

func TestPhoneRequiresValue(t *testing.T) {
	_, err := executeCommand(t, "phone", "format")
	require.Error(t, err)
}
