package game

import "fmt"

// StockType is one of the six board stocks.
type StockType string

const (
	Gold        StockType = "gold"
	Silver      StockType = "silver"
	Bonds       StockType = "bonds"
	Oil         StockType = "oil"
	Industrials StockType = "industrials"
	Grain       StockType = "grain"
)

// StockTypes lists every stock in board order.
var StockTypes = []StockType{Gold, Silver, Bonds, Oil, Industrials, Grain}

// ParseStockType validates a client-supplied stock name.
func ParseStockType(s string) (StockType, error) {
	for _, st := range StockTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", NewError(CodeInvalidStockType, fmt.Sprintf("unknown stock type %q", s))
}

// DiceAction is the interpreted action die result.
type DiceAction string

const (
	ActionUp       DiceAction = "up"
	ActionDown     DiceAction = "down"
	ActionDividend DiceAction = "dividend"
)

// Phase is the per-room turn phase.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseRolling  Phase = "rolling"
	PhaseTrading  Phase = "trading"
	PhaseGameOver Phase = "game_over"
)

// Game constants, all money in cents.
const (
	StartingPrice    int64 = 100     // $1.00
	StartingCash     int64 = 500000  // $5000.00
	SplitPrice       int64 = 200     // $2.00, split threshold
	DefaultWinTarget int64 = 1500000 // $15,000.00 net worth ends the game
	MaxPlayers             = 6
	MinPlayers             = 2
)

// ShareLots are the only share counts a trade may use.
var ShareLots = []int64{500, 1000, 2000, 5000}
