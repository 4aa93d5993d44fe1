package models

import (
	"time"

	"github.com/stocktick/ticker-backend/game"
)

type TransactionAction string

const (
	BuyTransaction      TransactionAction = "buy"
	SellTransaction     TransactionAction = "sell"
	DividendTransaction TransactionAction = "dividend"
)

// Transaction is an append-only audit row. Live state is never derived from
// it.
type Transaction struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	PlayerID      string            `gorm:"size:36;index;not null" json:"playerId"`
	RoomID        string            `gorm:"size:36;index;not null" json:"roomId"`
	StockType     game.StockType    `gorm:"size:16;not null" json:"stockType"`
	Action        TransactionAction `gorm:"size:16;not null" json:"action"`
	Shares        int64             `json:"shares"`
	PricePerShare int64             `json:"pricePerShare"` // cents
	TotalAmount   int64             `json:"totalAmount"`   // cents
	CreatedAt     time.Time         `json:"createdAt"`
}
