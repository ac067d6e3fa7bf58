package actions

import (
	"encoding/json"

	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/broadcast"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// HandleClient reads messages from one connection and dispatches them by
// action type. It runs as a goroutine per client and owns the disconnect
// path: when the loop exits the participant is removed from its room and the
// remaining occupant is notified.
func HandleClient(client *models.Client, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	defer func() {
		client.Close()
		mgr.Remove(client.ID)
		handleDisconnect(client, mgr, registry, logger)
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("websocket read error", zap.String("playerID", client.ID), zap.Error(err))
			}
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			logger.Error("failed to decode message", zap.String("playerID", client.ID), zap.Error(err))
			continue
		}

		switch env.Type {
		case models.ActionCreateRoom:
			var req models.CreateRoomRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				logger.Error("invalid create payload", zap.Error(err))
				continue
			}
			handleCreateRoom(client, req, registry, logger)
		case models.ActionJoinRoom:
			var req models.JoinRoomRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				logger.Error("invalid join payload", zap.Error(err))
				continue
			}
			handleJoinRoom(client, req, mgr, registry, logger)
		case models.ActionPlaceFleet:
			var req models.PlaceFleetRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				logger.Error("invalid placement payload", zap.Error(err))
				continue
			}
			handlePlaceFleet(client, req, mgr, registry, logger)
		case models.ActionFireShot:
			var req models.FireShotRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				logger.Error("invalid shot payload", zap.Error(err))
				continue
			}
			handleFireShot(client, req, mgr, registry, logger)
		case models.ActionChat:
			var req models.ChatRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				logger.Error("invalid chat payload", zap.Error(err))
				continue
			}
			handleChatMessage(client, req, mgr, registry, logger)
		default:
			logger.Info("unknown message type", zap.String("type", env.Type), zap.String("playerID", client.ID))
		}
	}
}

// handleDisconnect removes the participant from its room and tells whoever
// is left. This is the only cancellation path; an absent opponent leaves a
// session idle, never erroring.
func handleDisconnect(client *models.Client, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	room := registry.Remove(client.ID)
	logger.Info("client disconnected", zap.String("playerID", client.ID))
	if room == nil {
		return
	}
	broadcast.ToRoom(mgr, room, models.OpponentLeftEvent{Type: models.EventOpponentLeft}, logger)
}
