package game

import (
	"math/rand"
	"sync"
	"time"
)

// Die-face lookup tables from the board game rules.
var (
	stockDieMapping = map[int]StockType{
		1: Gold,
		2: Silver,
		3: Bonds,
		4: Oil,
		5: Industrials,
		6: Grain,
	}

	actionDieMapping = map[int]DiceAction{
		1: ActionDown,
		2: ActionDown,
		3: ActionUp,
		4: ActionUp,
		5: ActionDividend,
		6: ActionDividend,
	}

	amountDieMapping = map[int]int64{
		1: 5,
		2: 5,
		3: 10,
		4: 10,
		5: 20,
		6: 20,
	}
)

// DiceResult is one roll of the three dice plus its interpretation.
type DiceResult struct {
	StockDie  int        `json:"stockDie"`
	ActionDie int        `json:"actionDie"`
	AmountDie int        `json:"amountDie"`
	Stock     StockType  `json:"resultStock"`
	Action    DiceAction `json:"resultAction"`
	Amount    int64      `json:"resultAmount"` // cents per share
}

// Resolve maps three raw die faces (each in 1..6) to their game meaning.
func Resolve(stockDie, actionDie, amountDie int) DiceResult {
	return DiceResult{
		StockDie:  stockDie,
		ActionDie: actionDie,
		AmountDie: amountDie,
		Stock:     stockDieMapping[stockDie],
		Action:    actionDieMapping[actionDie],
		Amount:    amountDieMapping[amountDie],
	}
}

// Roller produces dice rolls. The store takes one so tests can script rolls.
type Roller interface {
	Roll() DiceResult
}

type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller returns a time-seeded Roller safe for concurrent use.
func NewRoller() Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *randomRoller) Roll() DiceResult {
	r.mu.Lock()
	s, a, m := r.rng.Intn(6)+1, r.rng.Intn(6)+1, r.rng.Intn(6)+1
	r.mu.Unlock()
	return Resolve(s, a, m)
}
