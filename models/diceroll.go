package models

import (
	"time"

	"github.com/stocktick/ticker-backend/game"
)

// DiceRoll is an append-only audit row recording the raw die faces and the
// interpreted result of a roll.
type DiceRoll struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RoomID       string          `gorm:"size:36;index;not null" json:"roomId"`
	PlayerID     string          `gorm:"size:36;not null" json:"playerId"`
	StockDie     int             `json:"stockDie"`
	ActionDie    int             `json:"actionDie"`
	AmountDie    int             `json:"amountDie"`
	ResultStock  game.StockType  `gorm:"size:16" json:"resultStock"`
	ResultAction game.DiceAction `gorm:"size:16" json:"resultAction"`
	ResultAmount int64           `json:"resultAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}
