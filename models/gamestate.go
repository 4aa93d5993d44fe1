package models

import (
	"time"

	"github.com/stocktick/ticker-backend/game"
)

type GameState struct {
	RoomID          string     `gorm:"primaryKey;size:36" json:"roomId"`
	CurrentTurn     int        `gorm:"not null" json:"currentTurn"`
	CurrentPlayerID *string    `gorm:"size:36" json:"currentPlayerId"`
	Phase           game.Phase `gorm:"size:16;not null" json:"phase"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
