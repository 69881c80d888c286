package catalog

import (
	"time"

	"github.com/appnotresponding/rumbo/internal/models"
	"github.com/appnotresponding/rumbo/internal/ui/components"
)

type contextual interface {
	ViewWithContext(ctx components.RenderContext) string
}

func preview(name string, c contextual) Preview {
	return Preview{Name: name, Render: c.ViewWithContext}
}

// Sections lists every preview in display order. now anchors the day header
// and chat timestamps.
func Sections(now time.Time) []Section {
	return []Section{
		typographySection(),
		buttonSection(),
		pillSection(),
		avatarSection(),
		fieldSection(),
		ratingSection(),
		chatSection(now),
		headerSection(now),
		cardSection(),
		authSection(),
	}
}

func typographySection() Section {
	previews := make([]Preview, 0, len(components.TextStyles))
	for _, style := range components.TextStyles {
		previews = append(previews, preview(style.String(),
			components.NewText("Descubre Bogotá a tu ritmo").WithTextStyle(style)))
	}
	return Section{Title: "Tipografía", Previews: previews}
}

func buttonSection() Section {
	return Section{Title: "Botones", Previews: []Preview{
		preview("Primary", components.PrimaryButton("Continuar")),
		preview("Secondary", components.SecondaryButton("Cancelar")),
		preview("Tertiary", components.TertiaryButton("Omitir")),
		preview("Small", components.PrimaryButton("Ok").WithSize(components.ButtonSmall)),
		preview("Large", components.PrimaryButton("Empezar").WithSize(components.ButtonLarge)),
		preview("Icon", components.SecondaryButton("Compartir").WithIcon("⇪")),
		preview("Disabled", components.PrimaryButton("Enviar").WithDisabled(true)),
		preview("Loading", components.PrimaryButton("Enviando").WithLoading(true)),
		preview("Full width", components.PrimaryButton("Guardar").WithFullWidth(true)),
	}}
}

func pillSection() Section {
	return Section{Title: "Pills", Previews: []Preview{
		preview("Filled", components.NewPill("Museos")),
		preview("Filled selected", components.NewPill("Museos").WithSelected(true)),
		preview("Outlined", components.NewPill("Parques").WithVariant(components.PillOutlined)),
		preview("Outlined selected", components.NewPill("Parques").WithVariant(components.PillOutlined).WithSelected(true)),
		preview("Tonal", components.NewPill("Comida").WithVariant(components.PillTonal).WithIcon("♨")),
	}}
}

func avatarSection() Section {
	return Section{Title: "Avatares", Previews: []Preview{
		preview("Initials", components.NewAvatar("Carlos Pérez")),
		preview("Picture", components.NewAvatar("Samuel Pico").WithPicture("https://github.com/Samu-Kiss.png")),
		preview("Fallback", components.NewAvatar("")),
		preview("Online", components.NewAvatar("María López").WithOnline(true)),
		preview("Small", components.NewAvatar("Ana").WithSize(components.AvatarSmall)),
		preview("Large bordered", components.NewAvatar("Ana").WithSize(components.AvatarLarge).WithBorder(true)),
	}}
}

func fieldSection() Section {
	return Section{Title: "Campos", Previews: []Preview{
		preview("Plain", components.AuthPlainText("Nombre", "John Doe")),
		preview("Phone", components.AuthPhoneText().WithValue("+573012345678")),
		preview("Phone invalid", components.AuthPhoneText().WithValue("+57301")),
		preview("Email invalid", components.AuthEmailText().WithValue("johndoe@mail")),
		preview("Email external error", components.AuthEmailText().WithValue("johndoe@mail.com").WithError("Este correo ya está registrado")),
		preview("Password", components.AuthPasswordText().WithValue("1ManzanaGrande!")),
		preview("Password revealed", components.AuthPasswordText().WithValue("1ManzanaGrande!").WithRevealed(true)),
		preview("Disabled", components.AuthPlainText("Ciudad", "Bogotá").WithValue("Bogotá").WithDisabled(true)),
	}}
}

func ratingSection() Section {
	return Section{Title: "Valoraciones", Previews: []Preview{
		preview("Stars 4.5", components.NewRatingStars(4.5)),
		preview("Stars 2 of 3", components.NewRatingStars(2).WithMaxStars(3)),
		preview("Interactive", components.NewRatingStars(3).WithInteractive(true).WithHighlight(3)),
		preview("Display", components.NewRatingDisplay(models.SamplePlace.AverageRating())),
		preview("Display without label", components.NewRatingDisplay(3.7).WithShowText(false)),
	}}
}

func chatSection(now time.Time) Section {
	threads := models.SampleThreads(now)
	stamp := func(m models.ChatMessage) string { return models.RelativeStamp(m.SentAt, now) }

	previews := []Preview{}
	for _, msg := range threads[0].Messages {
		name := "Bubble from contact"
		if msg.FromUser {
			name = "Bubble from user"
		}
		previews = append(previews, preview(name, components.NewChatBubble(msg)))
	}
	withImage := threads[0].Messages[0]
	withImage.ImageURL = "https://example.com/punto.png"
	withImage.Text = "Aquí está el punto de encuentro"
	previews = append(previews, preview("Bubble with image", components.NewChatBubble(withImage)))

	for _, thread := range threads {
		previews = append(previews, preview("Inbox "+thread.Contact, components.ChatListItemFor(thread, stamp)))
	}
	previews = append(previews,
		preview("Composer", components.NewMessageComposer()),
		preview("Composer typing", components.NewMessageComposer().WithValue("¿Nos vemos a las 5?").WithFocused(true)),
	)
	return Section{Title: "Chat", Previews: previews}
}

func headerSection(now time.Time) Section {
	return Section{Title: "Encabezados", Previews: []Preview{
		preview("Location", components.NewLocationHeader("Bogotá, Colombia")),
		preview("Unknown location", components.NewLocationHeader("")),
		preview("Day", components.NewDayHeader(now)),
	}}
}

func cardSection() Section {
	return Section{Title: "Tarjetas", Previews: []Preview{
		preview("Plan item", components.NewPlanItemCard(models.SamplePlace)),
		preview("Plan item added", components.NewPlanItemCard(models.SamplePlace).WithAdded(true)),
		preview("Itinerary item", components.NewItineraryItemCard(models.SamplePlace)),
	}}
}

func authSection() Section {
	return Section{Title: "Acceso", Previews: []Preview{
		preview("Primary CTA", components.NewAuthPrimaryCTA()),
		preview("Divider", components.NewDivider()),
		preview("Success alert", components.SuccessAlert("Tu cuenta fue creada.")),
		preview("Error alert", components.ErrorAlert("No pudimos registrar tu cuenta.").WithDismissible(true)),
	}}
}
