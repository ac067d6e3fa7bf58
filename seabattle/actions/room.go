package actions

import (
	"strings"

	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/broadcast"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"go.uber.org/zap"
)

func handleCreateRoom(client *models.Client, req models.CreateRoomRequest, registry *rooms.Registry, logger *zap.Logger) {
	if _, ok := registry.ByPlayer(client.ID); ok {
		logger.Info("create ignored, client already in a room", zap.String("playerID", client.ID))
		return
	}

	name := sanitizeName(req.PlayerName)
	room := registry.Create(client.ID, name)
	logger.Info("room created",
		zap.String("code", room.Code()),
		zap.String("playerID", client.ID),
		zap.String("name", name),
	)

	broadcast.ToClient(client, models.RoomCreatedEvent{
		Type: models.EventRoomCreated,
		Code: room.Code(),
		Role: rooms.RoleHost,
	}, logger)
}

func handleJoinRoom(client *models.Client, req models.JoinRoomRequest, mgr *connection.Manager, registry *rooms.Registry, logger *zap.Logger) {
	if _, ok := registry.ByPlayer(client.ID); ok {
		logger.Info("join ignored, client already in a room", zap.String("playerID", client.ID))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := sanitizeName(req.PlayerName)

	room, host, err := registry.Join(code, client.ID, name)
	if err != nil {
		logger.Info("join rejected", zap.String("code", code), zap.Error(err))
		broadcast.ToClient(client, models.RoomErrorEvent{
			Type:    models.EventRoomError,
			Message: err.Error(),
		}, logger)
		return
	}
	logger.Info("player joined room",
		zap.String("code", code),
		zap.String("playerID", client.ID),
		zap.String("name", name),
	)

	broadcast.ToClient(client, models.RoomJoinedEvent{
		Type:         models.EventRoomJoined,
		Code:         code,
		Role:         rooms.RoleGuest,
		OpponentName: host.Name,
	}, logger)

	broadcast.ToClient(mgr.Get(host.ID), models.OpponentJoinedEvent{
		Type:         models.EventOpponentJoined,
		OpponentName: name,
	}, logger)

	// Both players present: the room is in the placement phase now.
	broadcast.ToRoom(mgr, room, models.PhaseChangedEvent{
		Type:  models.EventPhaseChanged,
		Phase: string(rooms.PhasePlacement),
	}, logger)
}
