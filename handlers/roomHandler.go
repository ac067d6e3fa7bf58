package handlers

import (
	"net/http"
	"strings"

	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler answers liveness probes.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RoomInfoHandler lets a client sanity-check a room code before joining:
// it reports the room's phase and how many participants it holds.
func RoomInfoHandler(c *gin.Context, registry *rooms.Registry, logger *zap.Logger) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	room, ok := registry.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	logger.Info("room info requested", zap.String("code", code))
	c.JSON(http.StatusOK, gin.H{
		"code":    room.Code(),
		"phase":   string(room.Phase()),
		"players": len(room.Players()),
	})
}
