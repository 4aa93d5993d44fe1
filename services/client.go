package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/stocktick/ticker-backend/game"
	"github.com/stocktick/ticker-backend/utils/logger"
)

// Client is one websocket connection bound to a (room, player) identity at
// handshake time. Actions always run as that identity, so a socket can never
// act for another player.
type Client struct {
	roomID     string
	playerID   string
	playerName string
	conn       *websocket.Conn
	hub        *Hub
	send       chan []byte
	once       sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

type clientMessage struct {
	Action    string `json:"action"`
	StockType string `json:"stockType"`
	Shares    int64  `json:"shares"`
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("client %s disconnected", c.playerID)
			} else {
				logger.Warnf("client %s read error: %v", c.playerID, err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *Client) handleMessage(raw []byte) {
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError(game.CodeInvalidTransaction, "invalid message")
		return
	}

	store := c.hub.store
	switch msg.Action {
	case "roll-dice":
		result, splitOccurred, err := store.RollDice(c.roomID, c.playerID)
		if err != nil {
			c.sendGameError(err)
			return
		}
		c.hub.broadcastEvent(c.roomID, "dice-rolled", map[string]interface{}{
			"playerId":      c.playerID,
			"playerName":    c.playerName,
			"diceResult":    result,
			"splitOccurred": splitOccurred,
		})

	case "buy-stock", "sell-stock":
		stockType, err := game.ParseStockType(msg.StockType)
		if err != nil {
			c.sendGameError(err)
			return
		}
		if msg.Action == "buy-stock" {
			err = store.BuyStock(c.roomID, c.playerID, stockType, msg.Shares)
		} else {
			err = store.SellStock(c.roomID, c.playerID, stockType, msg.Shares)
		}
		if err != nil {
			c.sendGameError(err)
			return
		}
		c.hub.broadcastEvent(c.roomID, "stock-transaction", map[string]interface{}{
			"playerId":   c.playerID,
			"playerName": c.playerName,
			"action":     msg.Action,
			"stockType":  stockType,
			"shares":     msg.Shares,
		})

	case "end-turn":
		if err := store.EndTurn(c.roomID); err != nil {
			c.sendGameError(err)
		}

	default:
		logger.Warnf("client %s unknown action %q", c.playerID, msg.Action)
	}
}

func (c *Client) sendGameError(err error) {
	if ge, ok := asGameError(err); ok {
		c.sendError(ge.Code, ge.Message)
		return
	}
	c.sendError(game.CodeInternal, "internal error")
}

func (c *Client) sendError(code game.ErrorCode, message string) {
	b, _ := json.Marshal(map[string]interface{}{
		"type":    "error",
		"code":    code,
		"message": message,
	})
	select {
	case c.send <- b:
	default:
		logger.Warnf("client %s: dropping error message", c.playerID)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warnf("client %s write error: %v", c.playerID, err)
			return
		}
	}
}
