// Package components is the Rumbo terminal component kit.
//
// Every component is a struct configured through chained With… setters and
// rendered with View, or ViewWithContext when the caller controls the theme,
// locale or available width:
//
//	ctx := components.NewContext(components.NewTheme(components.ModeDark, components.ContrastHigh))
//	card := components.NewPlanItemCard(models.SamplePlace)
//	fmt.Println(card.ViewWithContext(ctx.WithMaxWidth(60)))
//
// Themes are immutable values holding a colour scheme, a typography scale and
// border shapes. Components read colour roles (primary, on-surface, outline,
// …) from the scheme rather than fixed colours, so the same tree renders in
// all six mode and contrast combinations.
//
// Caller overrides go through WithAppliers, which takes theme-aware StyleFuncs
// such as Foreground(RolePrimary) and runs them after the component's own
// styling.
package components
