package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhoneTransform(t *testing.T) {
	t.Parallel()

	out := TransformPhone.Apply("+573012345678")
	require.Equal(t, "+57 301 234 5678", out.Text)
	require.Equal(t, 4, out.Mapping.RawToDisplay(3))
	require.Equal(t, 3, out.Mapping.DisplayToRaw(4))
}

func TestMaskTransform(t *testing.T) {
	t.Parallel()

	out := TransformMask.Apply("clave")
	require.Equal(t, "•••••", out.Text)
	require.Equal(t, 2, out.Mapping.RawToDisplay(2))
	require.Equal(t, 5, out.Mapping.DisplayToRaw(99))
	require.Equal(t, 0, out.Mapping.RawToDisplay(-1))
}

func TestNoneTransformCountsCharacters(t *testing.T) {
	t.Parallel()

	out := TransformNone.Apply("Bogotá")
	require.Equal(t, "Bogotá", out.Text)
	require.Equal(t, 6, out.Mapping.RawToDisplay(10))
}

func TestParseTransformAndKeyboard(t *testing.T) {
	t.Parallel()

	tr, err := ParseTransform("Phone")
	require.NoError(t, err)
	require.Equal(t, TransformPhone, tr)

	tr, err = ParseTransform("")
	require.NoError(t, err)
	require.Equal(t, TransformNone, tr)

	_, err = ParseTransform("rot13")
	require.Error(t, err)

	kb, err := ParseKeyboard("email")
	require.NoError(t, err)
	require.Equal(t, KeyboardEmail, kb)
	require.Equal(t, "email", kb.String())

	_, err = ParseKeyboard("emoji")
	require.Error(t, err)
}

func TestPresetSanitize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "+573012345678", Phone.Sanitize("+57 301-234 5678"))
	require.Equal(t, "+5730", Phone.Sanitize("+57+30"))
	require.Equal(t, "+123456789012345", Phone.Sanitize("+1234567890123456789"))
	require.Equal(t, "Samu P", Plain.Sanitize("Samu P"))
	require.Equal(t, "ab", Plain.Sanitize("a\x07b"))
}
