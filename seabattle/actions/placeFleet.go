package actions

import (
	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/broadcast"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"go.uber.org/zap"
)

func handlePlaceFleet(client *models.Client, req models.PlaceFleetRequest, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	room, ok := registry.ByPlayer(client.ID)
	if !ok {
		logger.Info("placement ignored, client not in a room", zap.String("playerID", client.ID))
		return
	}

	out := room.PlaceFleet(client.ID, req.Ships)

	if out.Err != nil {
		logger.Info("fleet rejected",
			zap.String("code", room.Code()),
			zap.String("playerID", client.ID),
			zap.Error(out.Err),
		)
		broadcast.ToClient(client, models.PlacementErrorEvent{
			Type:    models.EventPlacementError,
			Message: out.Err.Error(),
		}, logger)
		return
	}
	if !out.Accepted {
		// Out of phase or board already built: stale client, drop.
		logger.Info("placement dropped",
			zap.String("code", room.Code()),
			zap.String("playerID", client.ID),
		)
		return
	}

	broadcast.ToClient(client, models.PlacementOKEvent{Type: models.EventPlacementOK}, logger)

	if out.BattleStarted {
		logger.Info("battle started",
			zap.String("code", room.Code()),
			zap.String("firstTurn", out.FirstTurn),
		)
		broadcast.ToRoom(mgr, room, models.BattleStartEvent{
			Type:      models.EventBattleStart,
			FirstTurn: out.FirstTurn,
		}, logger)
	}
}
