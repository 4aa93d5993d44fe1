package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/stocktick/ticker-backend/utils/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin in production
		return true
	},
}

// HandleWebSocket upgrades /ws/:roomId?playerId=… connections. The player
// must already have joined the room over REST; the socket is bound to that
// identity for its lifetime.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	roomID := c.Param("roomId")
	playerID := c.Query("playerId")
	if playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing playerId query param"})
		return
	}

	player, err := h.store.GetPlayer(roomID, playerID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("ws: upgrade failed for player %s: %v", playerID, err)
		return
	}

	client := &Client{
		roomID:     roomID,
		playerID:   playerID,
		playerName: player.Name,
		conn:       conn,
		hub:        h,
		send:       make(chan []byte, 32),
	}
	h.register(client)

	go client.writePump()
	go client.readPump()

	if err := h.store.MarkPlayerConnected(playerID, true); err != nil {
		logger.Warnf("ws: mark connected for %s failed: %v", playerID, err)
	}
	// Everyone, including the new client, gets a fresh snapshot.
	h.NotifyRoomStateChanged(roomID)
}
