package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stocktick/ticker-backend/controllers"
	"github.com/stocktick/ticker-backend/services"
)

func SetupRoutes(r *gin.Engine, store *services.Store) {
	rooms := &controllers.RoomController{Store: store}
	games := &controllers.GameController{Store: store}

	api := r.Group("/api")

	// ----------------------
	// Room routes
	// ----------------------
	api.POST("/rooms", rooms.CreateRoom)              // Create a room
	api.POST("/join", rooms.JoinRoom)                 // Join by invite code
	api.GET("/rooms/:roomId", rooms.GetRoomInfo)      // Lobby roster
	api.POST("/rooms/:roomId/start", rooms.StartGame) // Begin play

	// ----------------------
	// Game routes
	// ----------------------
	api.GET("/games/:roomId/state", games.GetGameState)
	api.POST("/games/:roomId/roll", games.RollDice)
	api.POST("/games/:roomId/buy", games.BuyStock)
	api.POST("/games/:roomId/sell", games.SellStock)
	api.POST("/games/:roomId/end-turn", games.EndTurn)
}
