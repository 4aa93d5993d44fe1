package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/stocktick/ticker-backend/game"
)

type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

type Room struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	InviteCode string         `gorm:"uniqueIndex;size:6;not null" json:"inviteCode"`
	Status     RoomStatus     `gorm:"size:16;not null" json:"status"`
	MaxPlayers int            `gorm:"not null" json:"maxPlayers"`
	Settings   datatypes.JSON `json:"settings"` // per-room rule overrides
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	Players   []Player   `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	Stocks    []Stock    `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"stocks,omitempty"`
	GameState *GameState `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"gameState,omitempty"`
}

// RoomSettings is the shape stored in Room.Settings.
type RoomSettings struct {
	WinTarget int64 `json:"winTarget"` // cents of net worth that ends the game
}

// ParsedSettings decodes Room.Settings, falling back to defaults on
// missing or malformed data.
func (r *Room) ParsedSettings() RoomSettings {
	s := RoomSettings{WinTarget: game.DefaultWinTarget}
	if len(r.Settings) > 0 {
		_ = json.Unmarshal(r.Settings, &s)
	}
	if s.WinTarget <= 0 {
		s.WinTarget = game.DefaultWinTarget
	}
	return s
}
