package actions

import (
	"strings"
	"time"

	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/broadcast"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"go.uber.org/zap"
)

const maxChatLength = 200

// handleChatMessage relays a text message to everyone in the sender's room,
// tagged with the sender's identity and display name. Works in any phase.
func handleChatMessage(client *models.Client, req models.ChatRequest, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	room, ok := registry.ByPlayer(client.ID)
	if !ok {
		return
	}
	sender := room.Player(client.ID)
	if sender == nil {
		return
	}

	text := truncate(strings.TrimSpace(req.Text), maxChatLength)
	if text == "" {
		return
	}

	broadcast.ToRoom(mgr, room, models.ChatIncomingEvent{
		Type:      models.EventChatIncoming,
		From:      sender.Name,
		FromID:    sender.ID,
		Text:      text,
		Timestamp: time.Now().Format(time.RFC3339),
	}, logger)
}
