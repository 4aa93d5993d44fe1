package models

import (
	"time"

	"github.com/stocktick/ticker-backend/game"
)

// Portfolio holds one player's position in one stock. Every player gets all
// six rows at join time so later updates never hit a missing key.
type Portfolio struct {
	PlayerID  string         `gorm:"primaryKey;size:36" json:"playerId"`
	StockType game.StockType `gorm:"primaryKey;size:16" json:"stockType"`
	RoomID    string         `gorm:"size:36;index;not null" json:"roomId"`
	Shares    int64          `gorm:"not null" json:"shares"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
