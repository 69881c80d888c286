package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestEverySchemeDefinesEveryRole(t *testing.T) {
	t.Parallel()

	roles := []Role{
		RolePrimary, RoleOnPrimary, RolePrimaryContainer, RoleOnPrimaryContainer,
		RoleSecondary, RoleOnSecondary, RoleSecondaryContainer, RoleOnSecondaryContainer,
		RoleError, RoleOnBackground, RoleOnSurface, RoleOnSurfaceVariant,
		RoleOutline, RoleOutlineVariant, RoleSurfaceContainerHigh,
	}

	for _, mode := range []Mode{ModeLight, ModeDark} {
		for _, contrast := range []Contrast{ContrastStandard, ContrastMedium, ContrastHigh} {
			theme := NewTheme(mode, contrast)
			for i, role := range roles {
				require.NotEmpty(t, role(theme.Colors), "%s role %d", theme.Name(), i)
			}
		}
	}
}

func TestSchemesDifferByModeAndContrast(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, LightTheme().Colors, DarkTheme().Colors)
	require.NotEqual(t, SchemeFor(ModeLight, ContrastStandard), SchemeFor(ModeLight, ContrastHigh))
	require.Equal(t, DefaultTheme(), LightTheme())
}

func TestParseModeAndContrast(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode("Dark")
	require.NoError(t, err)
	require.Equal(t, ModeDark, mode)

	_, err = ParseMode("auto")
	require.Error(t, err)

	contrast, err := ParseContrast("high")
	require.NoError(t, err)
	require.Equal(t, ContrastHigh, contrast)
	require.Equal(t, "dark/high", NewTheme(mode, contrast).Name())

	_, err = ParseContrast("extreme")
	require.Error(t, err)
}

func TestTypographyStyles(t *testing.T) {
	t.Parallel()

	typo := DefaultTheme().Typography
	require.True(t, typo.Style(TextH1).GetBold())
	require.True(t, typo.Style(TextButton).GetBold())
	require.False(t, typo.Style(TextBody).GetBold())
	require.Len(t, TextStyles, 6)
	require.Equal(t, "H3", TextH3.String())
}

func TestAppliersRunAfterComponentStyle(t *testing.T) {
	t.Parallel()

	var seen []string
	text := NewText("hola").WithAppliers(
		func(s lipgloss.Style, th Theme) lipgloss.Style { seen = append(seen, "first"); return s },
		func(s lipgloss.Style, th Theme) lipgloss.Style { seen = append(seen, "second"); return s },
	)
	require.Equal(t, "hola", plain(text.View()))
	require.Equal(t, []string{"first", "second"}, seen)
}
