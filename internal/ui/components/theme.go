package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects the light or dark colour schemes.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Contrast selects the contrast level of a scheme.
type Contrast int

const (
	ContrastStandard Contrast = iota
	ContrastMedium
	ContrastHigh
)

// String returns the contrast name.
func (c Contrast) String() string {
	switch c {
	case ContrastMedium:
		return "medium"
	case ContrastHigh:
		return "high"
	default:
		return "standard"
	}
}

// ParseMode maps "light" or "dark". "auto" must be resolved by the caller.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown theme mode %q", name)
	}
}

// ParseContrast maps "standard", "medium" or "high".
func ParseContrast(name string) (Contrast, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return ContrastStandard, nil
	case "medium":
		return ContrastMedium, nil
	case "high":
		return ContrastHigh, nil
	default:
		return ContrastStandard, fmt.Errorf("unknown contrast %q", name)
	}
}

// ColorScheme holds the colour roles components draw with.
type ColorScheme struct {
	Primary              lipgloss.Color
	OnPrimary            lipgloss.Color
	PrimaryContainer     lipgloss.Color
	OnPrimaryContainer   lipgloss.Color
	Secondary            lipgloss.Color
	OnSecondary          lipgloss.Color
	SecondaryContainer   lipgloss.Color
	OnSecondaryContainer lipgloss.Color
	Tertiary             lipgloss.Color
	OnTertiary           lipgloss.Color
	Error                lipgloss.Color
	OnError              lipgloss.Color
	Background           lipgloss.Color
	OnBackground         lipgloss.Color
	Surface              lipgloss.Color
	OnSurface            lipgloss.Color
	OnSurfaceVariant     lipgloss.Color
	Outline              lipgloss.Color
	OutlineVariant       lipgloss.Color
	SurfaceContainerHigh lipgloss.Color
}

// Role picks one colour out of a scheme.
type Role func(ColorScheme) lipgloss.Color

// Roles used by style functions.
var (
	RolePrimary              Role = func(s ColorScheme) lipgloss.Color { return s.Primary }
	RoleOnPrimary            Role = func(s ColorScheme) lipgloss.Color { return s.OnPrimary }
	RolePrimaryContainer     Role = func(s ColorScheme) lipgloss.Color { return s.PrimaryContainer }
	RoleOnPrimaryContainer   Role = func(s ColorScheme) lipgloss.Color { return s.OnPrimaryContainer }
	RoleSecondary            Role = func(s ColorScheme) lipgloss.Color { return s.Secondary }
	RoleOnSecondary          Role = func(s ColorScheme) lipgloss.Color { return s.OnSecondary }
	RoleSecondaryContainer   Role = func(s ColorScheme) lipgloss.Color { return s.SecondaryContainer }
	RoleOnSecondaryContainer Role = func(s ColorScheme) lipgloss.Color { return s.OnSecondaryContainer }
	RoleError                Role = func(s ColorScheme) lipgloss.Color { return s.Error }
	RoleOnBackground         Role = func(s ColorScheme) lipgloss.Color { return s.OnBackground }
	RoleOnSurface            Role = func(s ColorScheme) lipgloss.Color { return s.OnSurface }
	RoleOnSurfaceVariant     Role = func(s ColorScheme) lipgloss.Color { return s.OnSurfaceVariant }
	RoleOutline              Role = func(s ColorScheme) lipgloss.Color { return s.Outline }
	RoleOutlineVariant       Role = func(s ColorScheme) lipgloss.Color { return s.OutlineVariant }
	RoleSurfaceContainerHigh Role = func(s ColorScheme) lipgloss.Color { return s.SurfaceContainerHigh }
)

// OnlineIndicator is the fixed green of the avatar presence dot.
const OnlineIndicator = lipgloss.Color("#4CAF50")

type schemeKey struct {
	mode     Mode
	contrast Contrast
}

var schemes = map[schemeKey]ColorScheme{
	{ModeLight, ContrastStandard}: {
		Primary: "#00677F", OnPrimary: "#FFFFFF", PrimaryContainer: "#B7EAFF", OnPrimaryContainer: "#004D60",
		Secondary: "#8B5000", OnSecondary: "#FFFFFF", SecondaryContainer: "#FFDCBE", OnSecondaryContainer: "#6A3C00",
		Tertiary: "#5B5B7E", OnTertiary: "#FFFFFF", Error: "#BA1A1A", OnError: "#FFFFFF",
		Background: "#F5FAFD", OnBackground: "#171C1F", Surface: "#F5FAFD", OnSurface: "#171C1F",
		OnSurfaceVariant: "#40484C", Outline: "#70787D", OutlineVariant: "#BFC8CC", SurfaceContainerHigh: "#E3E9EC",
	},
	{ModeLight, ContrastMedium}: {
		Primary: "#003B4A", OnPrimary: "#FFFFFF", PrimaryContainer: "#1F768F", OnPrimaryContainer: "#FFFFFF",
		Secondary: "#522D00", OnSecondary: "#FFFFFF", SecondaryContainer: "#9E5E12", OnSecondaryContainer: "#FFFFFF",
		Tertiary: "#35365A", OnTertiary: "#FFFFFF", Error: "#740006", OnError: "#FFFFFF",
		Background: "#F5FAFD", OnBackground: "#171C1F", Surface: "#F5FAFD", OnSurface: "#0D1214",
		OnSurfaceVariant: "#2F373B", Outline: "#4B5458", OutlineVariant: "#666E73", SurfaceContainerHigh: "#D8DEE1",
	},
	{ModeLight, ContrastHigh}: {
		Primary: "#00313D", OnPrimary: "#FFFFFF", PrimaryContainer: "#005064", OnPrimaryContainer: "#FFFFFF",
		Secondary: "#452500", OnSecondary: "#FFFFFF", SecondaryContainer: "#6D3E00", OnSecondaryContainer: "#FFFFFF",
		Tertiary: "#2B2C4F", OnTertiary: "#FFFFFF", Error: "#600004", OnError: "#FFFFFF",
		Background: "#F5FAFD", OnBackground: "#171C1F", Surface: "#F5FAFD", OnSurface: "#000000",
		OnSurfaceVariant: "#000000", Outline: "#252D31", OutlineVariant: "#424A4E", SurfaceContainerHigh: "#CACFD3",
	},
	{ModeDark, ContrastStandard}: {
		Primary: "#84D2EE", OnPrimary: "#003544", PrimaryContainer: "#004D60", OnPrimaryContainer: "#B7EAFF",
		Secondary: "#FFB870", OnSecondary: "#4A2800", SecondaryContainer: "#6A3C00", OnSecondaryContainer: "#FFDCBE",
		Tertiary: "#C4C3EB", OnTertiary: "#2D2D4D", Error: "#FFB4AB", OnError: "#690005",
		Background: "#0F1416", OnBackground: "#DEE3E6", Surface: "#0F1416", OnSurface: "#DEE3E6",
		OnSurfaceVariant: "#BFC8CC", Outline: "#8A9296", OutlineVariant: "#40484C", SurfaceContainerHigh: "#252B2D",
	},
	{ModeDark, ContrastMedium}: {
		Primary: "#A6E5FF", OnPrimary: "#002936", PrimaryContainer: "#4B9BB6", OnPrimaryContainer: "#000000",
		Secondary: "#FFD4AE", OnSecondary: "#3B1F00", SecondaryContainer: "#C4823E", OnSecondaryContainer: "#000000",
		Tertiary: "#DAD9FF", OnTertiary: "#222242", Error: "#FFD2CC", OnError: "#540003",
		Background: "#0F1416", OnBackground: "#DEE3E6", Surface: "#0F1416", OnSurface: "#FFFFFF",
		OnSurfaceVariant: "#D5DEE2", Outline: "#AAB3B8", OutlineVariant: "#899296", SurfaceContainerHigh: "#303638",
	},
	{ModeDark, ContrastHigh}: {
		Primary: "#DCF4FF", OnPrimary: "#000000", PrimaryContainer: "#80CEEA", OnPrimaryContainer: "#000D13",
		Secondary: "#FFEDE0", OnSecondary: "#000000", SecondaryContainer: "#FFB468", OnSecondaryContainer: "#140600",
		Tertiary: "#F1EEFF", OnTertiary: "#000000", Error: "#FFECE9", OnError: "#000000",
		Background: "#0F1416", OnBackground: "#DEE3E6", Surface: "#0F1416", OnSurface: "#FFFFFF",
		OnSurfaceVariant: "#FFFFFF", Outline: "#E9F1F6", OutlineVariant: "#BBC4C8", SurfaceContainerHigh: "#3B4143",
	},
}

// SchemeFor returns the colour scheme for a mode and contrast level.
func SchemeFor(mode Mode, contrast Contrast) ColorScheme {
	if s, ok := schemes[schemeKey{mode, contrast}]; ok {
		return s
	}
	return schemes[schemeKey{ModeLight, ContrastStandard}]
}

// TextStyle is one of the app text styles.
type TextStyle int

const (
	TextH1 TextStyle = iota
	TextH2
	TextH3
	TextH4
	TextBody
	TextButton
)

// TextStyles lists every text style in display order.
var TextStyles = []TextStyle{TextH1, TextH2, TextH3, TextH4, TextBody, TextButton}

// String returns the style name.
func (s TextStyle) String() string {
	switch s {
	case TextH1:
		return "H1"
	case TextH2:
		return "H2"
	case TextH3:
		return "H3"
	case TextH4:
		return "H4"
	case TextButton:
		return "Button"
	default:
		return "Body"
	}
}

// Typography maps the app text styles, plus the Material roles the molecules
// use, onto terminal emphasis.
type Typography struct {
	H1, H2, H3, H4 lipgloss.Style
	Body           lipgloss.Style
	Button         lipgloss.Style

	HeadlineLarge lipgloss.Style
	TitleMedium   lipgloss.Style
	TitleSmall    lipgloss.Style
	BodyLarge     lipgloss.Style
	BodySmall     lipgloss.Style
	LabelLarge    lipgloss.Style
	LabelMedium   lipgloss.Style
	LabelSmall    lipgloss.Style
}

func defaultTypography() Typography {
	plain := lipgloss.NewStyle()
	bold := plain.Bold(true)
	return Typography{
		H1:     bold.Underline(true),
		H2:     bold,
		H3:     bold,
		H4:     bold.Italic(true),
		Body:   plain,
		Button: bold,

		HeadlineLarge: bold,
		TitleMedium:   bold,
		TitleSmall:    bold,
		BodyLarge:     plain,
		BodySmall:     plain,
		LabelLarge:    bold,
		LabelMedium:   plain,
		LabelSmall:    plain.Faint(true),
	}
}

// Style returns the lipgloss style for an app text style.
func (t Typography) Style(s TextStyle) lipgloss.Style {
	switch s {
	case TextH1:
		return t.H1
	case TextH2:
		return t.H2
	case TextH3:
		return t.H3
	case TextH4:
		return t.H4
	case TextButton:
		return t.Button
	default:
		return t.Body
	}
}

// Shapes are the corner treatments of containers.
type Shapes struct {
	Small  lipgloss.Border
	Medium lipgloss.Border
	Large  lipgloss.Border
	Pill   lipgloss.Border
}

func defaultShapes() Shapes {
	return Shapes{
		Small:  lipgloss.NormalBorder(),
		Medium: lipgloss.RoundedBorder(),
		Large:  lipgloss.DoubleBorder(),
		Pill:   lipgloss.RoundedBorder(),
	}
}

// Theme is an immutable styling theme. Build one with NewTheme and pass it
// through a RenderContext.
type Theme struct {
	Mode       Mode
	Contrast   Contrast
	Colors     ColorScheme
	Typography Typography
	Shapes     Shapes
}

// NewTheme returns the theme for a mode and contrast level.
func NewTheme(mode Mode, contrast Contrast) Theme {
	return Theme{
		Mode:       mode,
		Contrast:   contrast,
		Colors:     SchemeFor(mode, contrast),
		Typography: defaultTypography(),
		Shapes:     defaultShapes(),
	}
}

// DefaultTheme is light with standard contrast.
func DefaultTheme() Theme {
	return NewTheme(ModeLight, ContrastStandard)
}

// LightTheme returns the standard-contrast light theme.
func LightTheme() Theme {
	return NewTheme(ModeLight, ContrastStandard)
}

// DarkTheme returns the standard-contrast dark theme.
func DarkTheme() Theme {
	return NewTheme(ModeDark, ContrastStandard)
}

// Name identifies the theme in logs and snapshot headers, e.g. "dark/high".
func (t Theme) Name() string {
	return t.Mode.String() + "/" + t.Contrast.String()
}

// Foreground applies a colour role as the text colour.
func Foreground(role Role) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Foreground(role(theme.Colors))
	}
}

// Background applies a colour role as the background colour.
func Background(role Role) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Background(role(theme.Colors))
	}
}

// Bordered draws a border with the given shape in a colour role.
func Bordered(shape func(Shapes) lipgloss.Border, role Role) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Border(shape(theme.Shapes)).BorderForeground(role(theme.Colors))
	}
}

// ShapeSmall selects the small border for Bordered.
func ShapeSmall(s Shapes) lipgloss.Border { return s.Small }

// ShapeMedium selects the medium border for Bordered.
func ShapeMedium(s Shapes) lipgloss.Border { return s.Medium }

// ShapeLarge selects the large border for Bordered.
func ShapeLarge(s Shapes) lipgloss.Border { return s.Large }

// ShapePill selects the pill border for Bordered.
func ShapePill(s Shapes) lipgloss.Border { return s.Pill }
