package connection

import (
	"time"

	"github.com/DiabloDraco/local-boat-game/models"

	"go.uber.org/zap"
)

const (
	pingPeriod   = 10 * time.Second
	readDeadline = 60 * time.Second
)

// MaintainConnection pings the client on a fixed interval and extends the
// read deadline whenever a pong comes back. When a ping fails the connection
// is closed, which makes the client's read loop exit and run the disconnect
// path.
func MaintainConnection(client *models.Client, logger *zap.Logger) {
	defer client.Close()

	client.SetReadDeadline(time.Now().Add(readDeadline))
	client.Conn.SetPongHandler(func(string) error {
		return client.SetReadDeadline(time.Now().Add(readDeadline))
	})

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := client.Ping(); err != nil {
			logger.Info("ping failed, closing connection",
				zap.String("playerID", client.ID), zap.Error(err))
			return
		}
	}
}
