package services

import (
	"encoding/json"
	"sync"

	"github.com/stocktick/ticker-backend/utils/logger"
)

// Hub tracks connected clients per room and fans out state updates. It
// implements Notifier, so the store pushes a fresh snapshot to every room
// member after each committed mutation.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
	store *Store
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Bind wires the store in after construction; the store itself takes the hub
// as its Notifier, so the two are created before being linked.
func (h *Hub) Bind(store *Store) {
	h.store = store
}

type event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// NotifyRoomStateChanged implements Notifier.
func (h *Hub) NotifyRoomStateChanged(roomID string) {
	snapshot, err := h.store.GetGameState(roomID)
	if err != nil {
		logger.Errorf("hub: snapshot for room %s failed: %v", roomID, err)
		return
	}
	b, err := json.Marshal(event{Type: "game-state-updated", Data: snapshot})
	if err != nil {
		logger.Errorf("hub: marshal snapshot for room %s failed: %v", roomID, err)
		return
	}
	h.broadcast(roomID, b)
}

func (h *Hub) broadcast(roomID string, msg []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[roomID]))
	for c := range h.rooms[roomID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			logger.Warnf("hub: dropping message to player %s in room %s", c.playerID, roomID)
		}
	}
}

// broadcastEvent marshals and fans out a typed event to one room.
func (h *Hub) broadcastEvent(roomID string, typ string, data interface{}) {
	b, err := json.Marshal(event{Type: typ, Data: data})
	if err != nil {
		logger.Errorf("hub: marshal %s event failed: %v", typ, err)
		return
	}
	h.broadcast(roomID, b)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if h.rooms[c.roomID] == nil {
		h.rooms[c.roomID] = make(map[*Client]bool)
	}
	h.rooms[c.roomID][c] = true
	total := len(h.rooms[c.roomID])
	h.mu.Unlock()

	logger.Infof("hub: player %s connected to room %s (clients=%d)", c.playerID, c.roomID, total)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[c.roomID]; ok {
		if clients[c] {
			delete(clients, c)
			c.Close()
		}
		if len(clients) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	h.mu.Unlock()

	if err := h.store.MarkPlayerConnected(c.playerID, false); err != nil {
		logger.Warnf("hub: mark disconnected for %s failed: %v", c.playerID, err)
	}
	h.NotifyRoomStateChanged(c.roomID)
}
