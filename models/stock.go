package models

import (
	"time"

	"github.com/stocktick/ticker-backend/game"
)

type Stock struct {
	RoomID       string         `gorm:"primaryKey;size:36" json:"roomId"`
	StockType    game.StockType `gorm:"primaryKey;size:16" json:"stockType"`
	CurrentPrice int64          `gorm:"not null" json:"currentPrice"` // cents
	UpdatedAt    time.Time      `json:"updatedAt"`
}
