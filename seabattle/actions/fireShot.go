package actions

import (
	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/broadcast"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"go.uber.org/zap"
)

func handleFireShot(client *models.Client, req models.FireShotRequest, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	room, ok := registry.ByPlayer(client.ID)
	if !ok {
		logger.Info("shot ignored, client not in a room", zap.String("playerID", client.ID))
		return
	}

	out := room.Fire(client.ID, req.Row, req.Col)
	if !out.OK {
		// Wrong phase or turn, off-grid target, or already resolved cell.
		return
	}
	logger.Info("shot resolved",
		zap.String("code", room.Code()),
		zap.String("playerID", client.ID),
		zap.Int("row", out.Row),
		zap.Int("col", out.Col),
		zap.String("result", string(out.Result)),
	)

	// The shooter and the target get the same outcome data under different
	// framings, keeping both views in lock-step.
	broadcast.ToClient(client, models.ShotEvent{
		Type:     models.EventShotResult,
		Row:      out.Row,
		Col:      out.Col,
		Result:   string(out.Result),
		SunkShip: out.SunkShip,
	}, logger)

	if opponent := room.Opponent(client.ID); opponent != nil {
		broadcast.ToClient(mgr.Get(opponent.ID), models.ShotEvent{
			Type:     models.EventIncomingShot,
			Row:      out.Row,
			Col:      out.Col,
			Result:   string(out.Result),
			SunkShip: out.SunkShip,
		}, logger)
	}

	if out.GameOver {
		logger.Info("game over",
			zap.String("code", room.Code()),
			zap.String("winner", out.WinnerID),
		)
		broadcast.ToRoom(mgr, room, models.GameOverEvent{
			Type:       models.EventGameOver,
			Winner:     out.WinnerID,
			WinnerName: out.WinnerName,
		}, logger)
		return
	}

	if out.TurnChanged {
		broadcast.ToRoom(mgr, room, models.TurnChangedEvent{
			Type:        models.EventTurnChanged,
			CurrentTurn: out.CurrentTurn,
		}, logger)
	}
}
