package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message in a conversation.
type ChatMessage struct {
	ID       uuid.UUID
	Sender   string
	Text     string
	ImageURL string
	FromUser bool
	SentAt   time.Time
}

// ChatThread is a conversation as listed in the inbox.
type ChatThread struct {
	ID         uuid.UUID
	Contact    string
	PictureURL string
	Status     string
	Online     bool
	Messages   []ChatMessage
}

// NewChatMessage stamps a message with a fresh ID.
func NewChatMessage(sender, text string, fromUser bool, sentAt time.Time) ChatMessage {
	return ChatMessage{ID: uuid.New(), Sender: sender, Text: text, FromUser: fromUser, SentAt: sentAt}
}

// Last returns the most recent message, if any.
func (t ChatThread) Last() (ChatMessage, bool) {
	if len(t.Messages) == 0 {
		return ChatMessage{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// sampleNamespace derives stable IDs for sample data so renders are repeatable.
var sampleNamespace = uuid.MustParse("6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f")

func sampleID(name string) uuid.UUID {
	return uuid.NewSHA1(sampleNamespace, []byte(name))
}

// SampleThreads returns the conversations shown in previews. Times are
// relative to now.
func SampleThreads(now time.Time) []ChatThread {
	msg := func(key, sender, text string, fromUser bool, ago time.Duration) ChatMessage {
		return ChatMessage{ID: sampleID(key), Sender: sender, Text: text, FromUser: fromUser, SentAt: now.Add(-ago)}
	}

	return []ChatThread{
		{
			ID:      sampleID("carlos"),
			Contact: "Carlos Pérez",
			Online:  true,
			Messages: []ChatMessage{
				msg("carlos-1", "Carlos", "¡Hola! ¿Cómo estás?", false, 40*time.Minute),
				msg("carlos-2", "", "¡Todo bien! ¿Y tú?", true, 35*time.Minute),
				msg("carlos-3", "Carlos", "¡Nos vemos en el punto!", false, 30*time.Minute),
			},
		},
		{
			ID:      sampleID("maria"),
			Contact: "María López",
			Messages: []ChatMessage{
				msg("maria-1", "María", "Gracias por el viaje", false, 26*time.Hour),
			},
		},
		{
			ID:         sampleID("samuel"),
			Contact:    "Samuel Pico",
			PictureURL: "https://github.com/Samu-Kiss.png",
			Status:     "Rumbo al Museo Nacional",
			Messages: []ChatMessage{
				msg("samuel-1", "Samuel", "¿A qué hora sales?", false, 5*24*time.Hour),
			},
		},
	}
}
