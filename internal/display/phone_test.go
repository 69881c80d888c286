package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPhoneExamples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "+", want: "+"},
		{raw: "5", want: "5"},
		{raw: "57", want: "57"},
		{raw: "573", want: "57 3"},
		{raw: "+1", want: "+1"},
		{raw: "+573012345678", want: "+57 301 234 5678"},
		{raw: "+12025550123", want: "+1 202 555 0123"},
		{raw: "+79161234567", want: "+7 916 123 4567"},
		{raw: "+4915112345678", want: "+49 151 123 4567 8"},
		{raw: "+8613812345678", want: "+861 381 234 5678"},
		{raw: "3012345678", want: "30 123 456 78"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			require.Equal(t, tc.want, FormatPhone(tc.raw).Text())
		})
	}
}

func TestCountryCodeLenPrecedence(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, CountryCodeLen(""))
	require.Equal(t, 1, CountryCodeLen("5"))
	require.Equal(t, 1, CountryCodeLen("12"))
	require.Equal(t, 2, CountryCodeLen("57"))
	require.Equal(t, 2, CountryCodeLen("99"))
	require.Equal(t, 2, CountryCodeLen("79"))
	require.Equal(t, 1, CountryCodeLen("790"))
	require.Equal(t, 2, CountryCodeLen("200"))
	require.Equal(t, 2, CountryCodeLen("593"))
	require.Equal(t, 2, CountryCodeLen("699"))
	require.Equal(t, 3, CountryCodeLen("990"))
	require.Equal(t, 3, CountryCodeLen("861"))
	require.Equal(t, 3, CountryCodeLen("012"))
}

func TestFormatPhoneOffsetMapping(t *testing.T) {
	t.Parallel()

	p := FormatPhone("+573012345678")
	require.Equal(t, "+57 301 234 5678", p.Text())

	require.Equal(t, 0, p.RawToDisplay(0))
	require.Equal(t, 2, p.RawToDisplay(2))
	require.Equal(t, 4, p.RawToDisplay(3))
	require.Equal(t, 8, p.RawToDisplay(6))
	require.Equal(t, 12, p.RawToDisplay(9))
	require.Equal(t, 16, p.RawToDisplay(13))

	require.Equal(t, 3, p.DisplayToRaw(4))
	require.Equal(t, 3, p.DisplayToRaw(3))
	require.Equal(t, 13, p.DisplayToRaw(16))
}

func TestFormatPhoneOffsetsClamp(t *testing.T) {
	t.Parallel()

	p := FormatPhone("+5730")
	require.Equal(t, 0, p.RawToDisplay(-3))
	require.Equal(t, len([]rune(p.Text())), p.RawToDisplay(99))
	require.Equal(t, 0, p.DisplayToRaw(-1))
	require.Equal(t, 5, p.DisplayToRaw(99))

	var zero PhoneDisplay
	require.Equal(t, 0, zero.RawToDisplay(4))
	require.Equal(t, 0, zero.DisplayToRaw(4))
}

func TestFormatPhoneOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	const digits = "573012345678901"
	for n := 0; n <= len(digits); n++ {
		for _, prefix := range []string{"", "+"} {
			raw := prefix + digits[:n]
			p := FormatPhone(raw)
			for i := 0; i <= len(raw); i++ {
				require.Equal(t, i, p.DisplayToRaw(p.RawToDisplay(i)), "raw %q index %d", raw, i)
			}
		}
	}
}

func TestFormatPhoneRoundTripAcrossCountryCodes(t *testing.T) {
	t.Parallel()

	for _, lead := range []string{"1", "7", "2", "4", "6", "8", "9", "0"} {
		raw := "+" + lead + strings.Repeat("3", 14)
		p := FormatPhone(raw)
		for i := 0; i <= len(raw); i++ {
			require.Equal(t, i, p.DisplayToRaw(p.RawToDisplay(i)), "raw %q index %d", raw, i)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "+573012345678", SanitizePhone("+57 (301) 234-5678"))
	require.Equal(t, "", SanitizePhone("abc"))
	require.Equal(t, "+", SanitizePhone("+"))
	require.Equal(t, "123456789012345", SanitizePhone("1234567890123456789"))
	require.Equal(t, "+123456789012345", SanitizePhone("+12345678901234567"))
	require.Equal(t, "12+3", SanitizePhone("12+3"), "non-leading plus is kept literally")
	require.Equal(t, "0123", SanitizePhone("٠0١123"), "only ASCII digits survive")
}

func TestSanitizePhoneIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"+",
		"+573012345678",
		"+57 301 234 5678",
		"1234567890123456789",
		"+12345678901234567",
		"tel: +1 (202) 555-0123",
		"++57",
	}
	for _, in := range inputs {
		once := SanitizePhone(in)
		require.Equal(t, once, SanitizePhone(once), "input %q", in)
	}
}

func TestFormattedPhoneSanitizesBackToRaw(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"+573012345678", "+12025550123", "3012345678", "+"} {
		require.Equal(t, raw, SanitizePhone(FormatPhone(raw).Text()))
	}
}
