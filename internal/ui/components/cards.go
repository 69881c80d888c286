package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/appnotresponding/rumbo/internal/models"
)

const (
	defaultCardWidth = 56
	pictureGlyph     = "▨"

	addLabel    = "Añadir al Itinerario"
	addedLabel  = "Añadido al Itinerario"
	travelLabel = "Iniciar Desplazamiento"
	addGlyph    = "+"
	addedGlyph  = "✓"
	travelGlyph = "⌖"
)

// placeCard lays out a square picture placeholder taking four tenths of the
// width next to a column with the place details and an action.
func placeCard(ctx RenderContext, place models.Place, detail string, action *Button) string {
	c := ctx.Theme.Colors

	width := ctx.MaxWidth
	if width <= 0 {
		width = defaultCardWidth
	}
	pictureWidth := max(6, width*4/10)
	columnWidth := max(10, width-pictureWidth-1)
	pictureHeight := max(3, pictureWidth/2)

	picture := lipgloss.NewStyle().
		Background(c.SecondaryContainer).
		Foreground(c.OnSecondaryContainer).
		Width(pictureWidth).
		Height(pictureHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(pictureGlyph)

	columnCtx := ctx.WithMaxWidth(columnWidth)
	column := lipgloss.JoinVertical(lipgloss.Left,
		NewText(place.Name).WithType(TypeTitleMedium).ViewWithContext(columnCtx),
		NewText(detail).WithType(TypeBodySmall).WithMaxLines(4).ViewWithContext(columnCtx),
		NewText(place.Price).WithType(TypeBodySmall).ViewWithContext(columnCtx),
		"",
		action.ViewWithContext(columnCtx),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, picture, " ", column)
}

// PlanItemCard offers a place for the itinerary. Its action toggles between
// adding and added.
type PlanItemCard struct {
	BaseComponent
	place models.Place
	added bool
}

// NewPlanItemCard creates a card offering a place for the itinerary.
func NewPlanItemCard(place models.Place) *PlanItemCard {
	return &PlanItemCard{BaseComponent: NewBaseComponent(), place: place}
}

// View renders the card with the default theme.
func (p *PlanItemCard) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given theme context.
func (p *PlanItemCard) ViewWithContext(ctx RenderContext) string {
	return p.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(
		placeCard(ctx, p.place, p.place.Description, p.Action()))
}

// Action is the card's button in its current state.
func (p *PlanItemCard) Action() *Button {
	if p.added {
		return SecondaryButton(addedLabel).WithIcon(addedGlyph)
	}
	return SecondaryButton(addLabel).WithIcon(addGlyph)
}

// Toggle flips the added state and returns it.
func (p *PlanItemCard) Toggle() bool {
	p.added = !p.added
	return p.added
}

// WithAdded sets whether the place is already in the itinerary.
func (p *PlanItemCard) WithAdded(added bool) *PlanItemCard {
	p.added = added
	return p
}

// Added reports whether the place is in the itinerary.
func (p *PlanItemCard) Added() bool {
	return p.added
}

// ItineraryItemCard shows a planned place with its opening hours and a
// travel action.
type ItineraryItemCard struct {
	BaseComponent
	place models.Place
}

// NewItineraryItemCard creates a card for a planned stop.
func NewItineraryItemCard(place models.Place) *ItineraryItemCard {
	return &ItineraryItemCard{BaseComponent: NewBaseComponent(), place: place}
}

// View renders the card with the default theme.
func (i *ItineraryItemCard) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given theme context.
func (i *ItineraryItemCard) ViewWithContext(ctx RenderContext) string {
	action := SecondaryButton(travelLabel).WithIcon(travelGlyph)
	return i.Overlay(lipgloss.NewStyle(), ctx.Theme).Render(
		placeCard(ctx, i.place, i.place.OpenHours, action))
}
