package broadcast

import (
	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"go.uber.org/zap"
)

// ToClient sends one event to one participant.
func ToClient(client *models.Client, event interface{}, logger *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Send(event); err != nil {
		logger.Error("failed to send event",
			zap.String("playerID", client.ID), zap.Error(err))
	}
}

// ToRoom sends one event to every participant of the room that still has a
// live connection.
func ToRoom(mgr *connection.Manager, room *rooms.Room, event interface{}, logger *zap.Logger) {
	for _, p := range room.Players() {
		ToClient(mgr.Get(p.ID), event, logger)
	}
}
