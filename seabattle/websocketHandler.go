package seabattle

import (
	"net/http"

	"github.com/DiabloDraco/local-boat-game/models"
	"github.com/DiabloDraco/local-boat-game/seabattle/actions"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// HandleConnections upgrades an HTTP request to a websocket, mints the
// participant identity for this connection and starts its read and keepalive
// goroutines. The client learns its own id from the connected event; turn and
// winner ids in later events are interpreted against it.
func HandleConnections(w http.ResponseWriter, r *http.Request, registry *rooms.Registry, mgr *connection.Manager, upgrader websocket.Upgrader, logger *zap.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("failed to upgrade websocket", zap.Error(err))
		return
	}

	client := models.NewClient(uuid.NewString(), conn)
	mgr.Add(client)
	logger.Info("client connected", zap.String("playerID", client.ID))

	if err := client.Send(models.ConnectedEvent{
		Type:     models.EventConnected,
		PlayerID: client.ID,
	}); err != nil {
		logger.Error("failed to send connected event", zap.Error(err))
	}

	go connection.MaintainConnection(client, logger)
	go actions.HandleClient(client, mgr, registry, logger)
}
