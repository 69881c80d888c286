package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestVStackGap(t *testing.T) {
	t.Parallel()

	view := plain(VStack(NewText("uno"), NewText("dos")).WithGap(1).View())
	require.Equal(t, "uno\n\ndos", view)

	view = plain(VStack(NewText("uno"), nil, NewText("dos")).View())
	require.Equal(t, "uno\ndos", view)
}

func TestHStackSplitsWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithMaxWidth(21)
	stack := HStack(NewDivider(), NewDivider()).WithGap(1)
	require.Equal(t, strings.Repeat("─", 10)+" "+strings.Repeat("─", 10), plain(stack.ViewWithContext(ctx)))
}

func TestDividerWidths(t *testing.T) {
	t.Parallel()

	require.Equal(t, strings.Repeat("─", defaultDividerWidth), plain(NewDivider().View()))
	require.Equal(t, "=====", plain(NewDivider().WithChar("=").WithWidth(5).View()))
}

func TestTextClampsLines(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithMaxWidth(10)
	view := plain(NewText("uno dos tres cuatro cinco seis siete").WithMaxLines(2).ViewWithContext(ctx))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[1], ellipsis))
	for _, line := range lines {
		require.LessOrEqual(t, lipglossWidth(line), 10)
	}
}

func TestPillToggle(t *testing.T) {
	t.Parallel()

	pill := NewPill("Museos").WithIcon("⌂")
	require.Equal(t, " ⌂ Museos", plain(pill.View()))
	require.True(t, pill.Toggle())
	require.True(t, pill.Selected())

	outlined := plain(NewPill("Parques").WithVariant(PillOutlined).View())
	require.Len(t, strings.Split(outlined, "\n"), 3)
}

func TestOverlayCallerStyleWins(t *testing.T) {
	t.Parallel()

	text := NewText("hola")
	text.SetStyle(lipgloss.NewStyle().PaddingLeft(3))
	require.Equal(t, "   hola", plain(text.View()))
}

func TestOverlayKeepsComponentSpacing(t *testing.T) {
	t.Parallel()

	own := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1)

	base := NewBaseComponent()
	require.Equal(t, "   hi", plain(base.Overlay(own, DefaultTheme()).Render("hi")))

	base.SetStyle(lipgloss.NewStyle().PaddingLeft(1))
	require.Equal(t, "  hi", plain(base.Overlay(own, DefaultTheme()).Render("hi")))

	widths := make([]int, 0, 3)
	for _, size := range []AvatarSize{AvatarSmall, AvatarMedium, AvatarLarge} {
		widths = append(widths, lipgloss.Width(NewAvatar("Carlos").WithSize(size).View()))
	}
	require.Equal(t, []int{2, 4, 6}, widths)
}

func TestAuthPrimaryCTA(t *testing.T) {
	t.Parallel()

	cta := NewAuthPrimaryCTA()
	buttons := cta.Buttons()
	require.Equal(t, signInLabel, buttons[0].Label())
	require.Equal(t, signUpLabel, buttons[1].Label())

	view := plain(cta.ViewWithContext(DefaultContext().WithMaxWidth(30)))
	require.Contains(t, view, signInLabel)
	require.Contains(t, view, signUpLabel)
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipglossWidth(line), 30)
	}
}
