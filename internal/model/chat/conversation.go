package chat

import (
	"time"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
)

// Conversation groups the turns exchanged between one user and one bot.
// BotType is fixed at creation and never changes.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BotType   bot.Type  `json:"botType"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
