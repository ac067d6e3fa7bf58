package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/DiabloDraco/local-boat-game/handlers"
	"github.com/DiabloDraco/local-boat-game/seabattle"
	"github.com/DiabloDraco/local-boat-game/seabattle/connection"
	"github.com/DiabloDraco/local-boat-game/seabattle/rooms"
	"github.com/DiabloDraco/local-boat-game/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func main() {
	logger, err := utils.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	registry := rooms.NewRegistry()
	mgr := connection.NewManager()
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	// Periodic registry occupancy log.
	reporter := utils.StartRoomReporter(registry, mgr, logger)
	defer reporter.Stop()

	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.HealthHandler)
	router.GET("/room/info", func(c *gin.Context) {
		handlers.RoomInfoHandler(c, registry, logger)
	})
	router.GET("/ws", func(c *gin.Context) {
		seabattle.HandleConnections(c.Writer, c.Request, registry, mgr, upgrader, logger)
	})

	if err := router.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
