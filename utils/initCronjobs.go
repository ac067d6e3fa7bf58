package utils

import (
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartRoomReporter schedules a periodic log line with registry and
// connection occupancy. Rooms are torn down by participant departure, so
// this only observes.
func StartRoomReporter(registry *rooms.Registry, mgr *connection.Manager, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 1m", func() {
		roomCount, playerCount := registry.Stats()
		logger.Info("registry stats",
			zap.Int("rooms", roomCount),
			zap.Int("participants", playerCount),
			zap.Int("connections", mgr.Count()),
		)
	})

	c.Start()
	return c
}
