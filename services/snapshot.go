package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stocktick/ticker-backend/game"
	"github.com/stocktick/ticker-backend/models"
)

// GameSnapshot is the full per-room view pushed to clients after every state
// change.
type GameSnapshot struct {
	RoomID          string           `json:"roomId"`
	CurrentTurn     int              `json:"currentTurn"`
	CurrentPlayerID *string          `json:"currentPlayerId"`
	Phase           game.Phase       `json:"phase"`
	Players         []PlayerSnapshot `json:"players"`
	Stocks          []StockSnapshot  `json:"stocks"`
}

type PlayerSnapshot struct {
	PlayerID   string                   `json:"playerId"`
	Name       string                   `json:"name"`
	TurnOrder  int                      `json:"turnOrder"`
	Cash       int64                    `json:"cash"`
	Stocks     map[game.StockType]int64 `json:"stocks"`
	TotalValue int64                    `json:"totalValue"`
	Connected  bool                     `json:"connected"`
}

type StockSnapshot struct {
	StockType    game.StockType `json:"stockType"`
	CurrentPrice int64          `json:"currentPrice"`
}

// RoomInfo is the lobby view of a room before and during play.
type RoomInfo struct {
	RoomID     string            `json:"roomId"`
	Name       string            `json:"name"`
	InviteCode string            `json:"inviteCode"`
	Status     models.RoomStatus `json:"status"`
	MaxPlayers int               `json:"maxPlayers"`
	Players    []RoomInfoPlayer  `json:"players"`
}

type RoomInfoPlayer struct {
	PlayerID  string `json:"playerId"`
	Name      string `json:"name"`
	TurnOrder int    `json:"turnOrder"`
	Connected bool   `json:"connected"`
}

// GetGameState assembles a consistent point-in-time snapshot: prices, every
// player's cash, holdings, derived net worth, and the turn state. Read-only.
func (s *Store) GetGameState(roomID string) (*GameSnapshot, error) {
	var snapshot *GameSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("turn_order ASC") }).
			Preload("Players.Portfolios").
			Preload("Stocks").
			Preload("GameState").
			First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeGameNotFound, "game not found")
			}
			return err
		}
		if room.GameState == nil {
			return game.NewError(game.CodeGameNotFound, "game not found")
		}
		snapshot = buildSnapshot(&room)
		return nil
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return nil, err
		}
		return nil, internalErr("get game state", err)
	}
	return snapshot, nil
}

func buildSnapshot(room *models.Room) *GameSnapshot {
	prices := make(map[game.StockType]int64, len(room.Stocks))
	stocks := make([]StockSnapshot, 0, len(room.Stocks))
	for _, st := range game.StockTypes {
		for _, stock := range room.Stocks {
			if stock.StockType == st {
				prices[st] = stock.CurrentPrice
				stocks = append(stocks, StockSnapshot{StockType: st, CurrentPrice: stock.CurrentPrice})
			}
		}
	}

	players := make([]PlayerSnapshot, 0, len(room.Players))
	for _, p := range room.Players {
		holdings := make(map[game.StockType]int64, len(p.Portfolios))
		for _, pf := range p.Portfolios {
			holdings[pf.StockType] = pf.Shares
		}
		players = append(players, PlayerSnapshot{
			PlayerID:   p.ID,
			Name:       p.Name,
			TurnOrder:  p.TurnOrder,
			Cash:       p.Cash,
			Stocks:     holdings,
			TotalValue: game.PortfolioValue(p.Cash, holdings, prices),
			Connected:  p.Connected,
		})
	}

	return &GameSnapshot{
		RoomID:          room.ID,
		CurrentTurn:     room.GameState.CurrentTurn,
		CurrentPlayerID: room.GameState.CurrentPlayerID,
		Phase:           room.GameState.Phase,
		Players:         players,
		Stocks:          stocks,
	}
}

// GetRoomInfo returns the lobby roster for a room.
func (s *Store) GetRoomInfo(roomID string) (*RoomInfo, error) {
	var room models.Room
	if err := s.db.
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("turn_order ASC") }).
		First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.NewError(game.CodeRoomNotFound, "room not found")
		}
		return nil, internalErr("get room info", err)
	}

	info := &RoomInfo{
		RoomID:     room.ID,
		Name:       room.Name,
		InviteCode: room.InviteCode,
		Status:     room.Status,
		MaxPlayers: room.MaxPlayers,
	}
	for _, p := range room.Players {
		info.Players = append(info.Players, RoomInfoPlayer{
			PlayerID:  p.ID,
			Name:      p.Name,
			TurnOrder: p.TurnOrder,
			Connected: p.Connected,
		})
	}
	return info, nil
}
