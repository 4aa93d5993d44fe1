package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stocktick/ticker-backend/game"
	"github.com/stocktick/ticker-backend/models"
	"github.com/stocktick/ticker-backend/utils/logger"
)

const inviteCodeAttempts = 5

// Notifier receives a hook call after every committed state change. The
// websocket hub implements it; tests inject a recorder.
type Notifier interface {
	NotifyRoomStateChanged(roomID string)
}

// Store is the transactional core of the game. Every mutation of room state
// goes through one of its methods; each runs under the room's lock inside a
// single DB transaction, so operations on the same room are serialized while
// different rooms never contend.
type Store struct {
	db       *gorm.DB
	notifier Notifier
	roller   game.Roller

	roomLocks sync.Map // roomID -> *sync.Mutex
}

func NewStore(db *gorm.DB, notifier Notifier, roller game.Roller) *Store {
	if roller == nil {
		roller = game.NewRoller()
	}
	return &Store{db: db, notifier: notifier, roller: roller}
}

func (s *Store) lockRoom(roomID string) func() {
	v, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Store) notify(roomID string) {
	if s.notifier != nil {
		s.notifier.NotifyRoomStateChanged(roomID)
	}
}

func internalErr(op string, err error) error {
	logger.Errorf("store: %s failed: %v", op, err)
	return game.NewError(game.CodeInternal, fmt.Sprintf("%s failed", op))
}

// CreateRoom creates a waiting room with a unique invite code, the six
// stocks seeded at the starting price, and an initial game state.
func (s *Store) CreateRoom(name string) (*models.Room, error) {
	settings, _ := json.Marshal(models.RoomSettings{WinTarget: game.DefaultWinTarget})

	var room *models.Room
	var lastErr error
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		candidate := &models.Room{
			ID:         uuid.NewString(),
			Name:       name,
			InviteCode: game.NewInviteCode(),
			Status:     models.RoomWaiting,
			MaxPlayers: game.MaxPlayers,
			Settings:   datatypes.JSON(settings),
		}

		lastErr = s.db.Transaction(func(tx *gorm.DB) error {
			var taken int64
			if err := tx.Model(&models.Room{}).
				Where("invite_code = ?", candidate.InviteCode).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return errInviteCollision
			}
			if err := tx.Create(candidate).Error; err != nil {
				return err
			}

			stocks := make([]models.Stock, 0, len(game.StockTypes))
			for _, st := range game.StockTypes {
				stocks = append(stocks, models.Stock{
					RoomID:       candidate.ID,
					StockType:    st,
					CurrentPrice: game.StartingPrice,
				})
			}
			if err := tx.Create(&stocks).Error; err != nil {
				return err
			}

			return tx.Create(&models.GameState{
				RoomID:      candidate.ID,
				CurrentTurn: 0,
				Phase:       game.PhaseWaiting,
			}).Error
		})
		if lastErr == nil {
			room = candidate
			break
		}
		if !errors.Is(lastErr, errInviteCollision) {
			return nil, internalErr("create room", lastErr)
		}
	}
	if room == nil {
		return nil, internalErr("create room", lastErr)
	}

	logger.Infof("room %s created with invite code %s", room.ID, room.InviteCode)
	return room, nil
}

var errInviteCollision = errors.New("invite code collision")

// JoinRoom adds a player to a waiting room by invite code. The new player
// gets the starting cash, the next turn-order slot, and a zero portfolio row
// for every stock.
func (s *Store) JoinRoom(inviteCode, playerName string) (roomID, playerID string, err error) {
	var room models.Room
	if err := s.db.Where("invite_code = ?", inviteCode).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", game.NewError(game.CodeRoomNotFound, "room with this invite code does not exist")
		}
		return "", "", internalErr("join room", err)
	}

	unlock := s.lockRoom(room.ID)
	defer unlock()

	player := models.Player{
		ID:   uuid.NewString(),
		Name: playerName,
		Cash: game.StartingCash,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var fresh models.Room
		if err := tx.Preload("Players").First(&fresh, "id = ?", room.ID).Error; err != nil {
			return err
		}
		if fresh.Status != models.RoomWaiting {
			return game.NewError(game.CodeRoomNotAccepting, "this room is not accepting new players")
		}
		if len(fresh.Players) >= fresh.MaxPlayers {
			return game.NewError(game.CodeRoomFull, "this room is full")
		}
		for _, p := range fresh.Players {
			if p.Name == playerName {
				return game.NewError(game.CodeNameTaken, "player name is already taken in this room")
			}
		}

		player.RoomID = fresh.ID
		player.TurnOrder = len(fresh.Players)
		if err := tx.Create(&player).Error; err != nil {
			return err
		}

		portfolios := make([]models.Portfolio, 0, len(game.StockTypes))
		for _, st := range game.StockTypes {
			portfolios = append(portfolios, models.Portfolio{
				PlayerID:  player.ID,
				StockType: st,
				RoomID:    fresh.ID,
				Shares:    0,
			})
		}
		return tx.Create(&portfolios).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return "", "", err
		}
		return "", "", internalErr("join room", err)
	}

	logger.Infof("player %s (%s) joined room %s as turn %d", playerName, player.ID, room.ID, player.TurnOrder)
	s.notify(room.ID)
	return room.ID, player.ID, nil
}

// StartGame moves a waiting room into play: room status PLAYING, phase
// ROLLING, current player = turn order 0.
func (s *Store) StartGame(roomID string) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("turn_order ASC")
		}).First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeRoomNotFound, "room not found")
			}
			return err
		}
		if room.Status != models.RoomWaiting {
			return game.NewError(game.CodeWrongPhase, "game has already started")
		}
		if len(room.Players) < game.MinPlayers {
			return game.NewError(game.CodeInsufficientPlayers, "need at least 2 players to start the game")
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Update("status", models.RoomPlaying).Error; err != nil {
			return err
		}
		first := room.Players[0].ID
		return tx.Model(&models.GameState{}).Where("room_id = ?", roomID).
			Updates(map[string]interface{}{
				"phase":             game.PhaseRolling,
				"current_player_id": first,
			}).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return err
		}
		return internalErr("start game", err)
	}

	logger.Infof("room %s started", roomID)
	s.notify(roomID)
	return nil
}

// RollDice executes one dice roll as a single atomic unit: record the roll,
// move the affected stock's price, apply a split or pay dividends when the
// dice say so, then move the phase to TRADING.
func (s *Store) RollDice(roomID, playerID string) (game.DiceResult, bool, error) {
	unlock := s.lockRoom(roomID)
	defer unlock()

	result := s.roller.Roll()
	splitOccurred := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		state, err := s.loadGameState(tx, roomID)
		if err != nil {
			return err
		}
		if _, err := s.requireMember(tx, roomID, playerID); err != nil {
			return err
		}
		if state.Phase != game.PhaseRolling {
			return game.NewError(game.CodeWrongPhase,
				fmt.Sprintf("cannot roll dice in %s phase", state.Phase))
		}
		if state.CurrentPlayerID == nil || *state.CurrentPlayerID != playerID {
			return game.NewError(game.CodeNotYourTurn, "it is not your turn to roll")
		}

		if err := tx.Create(&models.DiceRoll{
			RoomID:       roomID,
			PlayerID:     playerID,
			StockDie:     result.StockDie,
			ActionDie:    result.ActionDie,
			AmountDie:    result.AmountDie,
			ResultStock:  result.Stock,
			ResultAction: result.Action,
			ResultAmount: result.Amount,
		}).Error; err != nil {
			return err
		}

		var stock models.Stock
		if err := tx.Where("room_id = ? AND stock_type = ?", roomID, result.Stock).
			First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeNotFound, "stock not found")
			}
			return err
		}

		newPrice := game.NextPrice(stock.CurrentPrice, result.Action, result.Amount)

		// Split takes precedence over the computed price: holders double up
		// and the price goes back to the starting price, so no room ever
		// observes a price at or above the split threshold.
		if game.ShouldSplit(newPrice) {
			splitOccurred = true
			if err := tx.Model(&models.Portfolio{}).
				Where("room_id = ? AND stock_type = ? AND shares > 0", roomID, result.Stock).
				Update("shares", gorm.Expr("shares * 2")).Error; err != nil {
				return err
			}
			newPrice = game.StartingPrice
		}
		if err := tx.Model(&models.Stock{}).
			Where("room_id = ? AND stock_type = ?", roomID, result.Stock).
			Update("current_price", newPrice).Error; err != nil {
			return err
		}

		if result.Action == game.ActionDividend {
			var holders []models.Portfolio
			if err := tx.Where("room_id = ? AND stock_type = ? AND shares > 0", roomID, result.Stock).
				Find(&holders).Error; err != nil {
				return err
			}
			for _, h := range holders {
				payout := game.Dividend(newPrice, h.Shares, result.Amount)
				if payout == 0 {
					continue
				}
				if err := tx.Model(&models.Player{}).Where("id = ?", h.PlayerID).
					Update("cash", gorm.Expr("cash + ?", payout)).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.Transaction{
					PlayerID:      h.PlayerID,
					RoomID:        roomID,
					StockType:     result.Stock,
					Action:        models.DividendTransaction,
					Shares:        h.Shares,
					PricePerShare: result.Amount,
					TotalAmount:   payout,
				}).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&models.GameState{}).Where("room_id = ?", roomID).
			Update("phase", game.PhaseTrading).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return game.DiceResult{}, false, err
		}
		return game.DiceResult{}, false, internalErr("roll dice", err)
	}

	logger.Infof("room %s: %s rolled %s %s %d¢ (split=%t)",
		roomID, playerID, result.Stock, result.Action, result.Amount, splitOccurred)
	s.notify(roomID)
	return result, splitOccurred, nil
}

// BuyStock validates and commits a purchase in one transaction, closing the
// check-then-act race between validation and commit.
func (s *Store) BuyStock(roomID, playerID string, stockType game.StockType, shares int64) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		state, err := s.loadGameState(tx, roomID)
		if err != nil {
			return err
		}
		player, err := s.requireMember(tx, roomID, playerID)
		if err != nil {
			return err
		}
		if state.Phase != game.PhaseTrading {
			return game.NewError(game.CodeWrongPhase,
				fmt.Sprintf("cannot trade in %s phase", state.Phase))
		}

		var stock models.Stock
		if err := tx.Where("room_id = ? AND stock_type = ?", roomID, stockType).
			First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeNotFound, "stock not found")
			}
			return err
		}

		if err := game.ValidateBuy(shares, stock.CurrentPrice, player.Cash); err != nil {
			return game.NewError(game.CodeInvalidTransaction, err.Error())
		}
		cost := shares * stock.CurrentPrice

		if err := tx.Model(&models.Player{}).Where("id = ?", playerID).
			Update("cash", gorm.Expr("cash - ?", cost)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Portfolio{}).
			Where("player_id = ? AND stock_type = ?", playerID, stockType).
			Update("shares", gorm.Expr("shares + ?", shares)).Error; err != nil {
			return err
		}
		return tx.Create(&models.Transaction{
			PlayerID:      playerID,
			RoomID:        roomID,
			StockType:     stockType,
			Action:        models.BuyTransaction,
			Shares:        shares,
			PricePerShare: stock.CurrentPrice,
			TotalAmount:   cost,
		}).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return err
		}
		return internalErr("buy stock", err)
	}

	s.notify(roomID)
	return nil
}

// SellStock validates and commits a sale in one transaction.
func (s *Store) SellStock(roomID, playerID string, stockType game.StockType, shares int64) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		state, err := s.loadGameState(tx, roomID)
		if err != nil {
			return err
		}
		if _, err := s.requireMember(tx, roomID, playerID); err != nil {
			return err
		}
		if state.Phase != game.PhaseTrading {
			return game.NewError(game.CodeWrongPhase,
				fmt.Sprintf("cannot trade in %s phase", state.Phase))
		}

		var portfolio models.Portfolio
		if err := tx.Where("player_id = ? AND stock_type = ?", playerID, stockType).
			First(&portfolio).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeNotFound, "portfolio not found")
			}
			return err
		}
		var stock models.Stock
		if err := tx.Where("room_id = ? AND stock_type = ?", roomID, stockType).
			First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.NewError(game.CodeNotFound, "stock not found")
			}
			return err
		}

		if err := game.ValidateSell(shares, portfolio.Shares); err != nil {
			return game.NewError(game.CodeInvalidTransaction, err.Error())
		}
		proceeds := shares * stock.CurrentPrice

		if err := tx.Model(&models.Player{}).Where("id = ?", playerID).
			Update("cash", gorm.Expr("cash + ?", proceeds)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Portfolio{}).
			Where("player_id = ? AND stock_type = ?", playerID, stockType).
			Update("shares", gorm.Expr("shares - ?", shares)).Error; err != nil {
			return err
		}
		return tx.Create(&models.Transaction{
			PlayerID:      playerID,
			RoomID:        roomID,
			StockType:     stockType,
			Action:        models.SellTransaction,
			Shares:        shares,
			PricePerShare: stock.CurrentPrice,
			TotalAmount:   proceeds,
		}).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return err
		}
		return internalErr("sell stock", err)
	}

	s.notify(roomID)
	return nil
}

// EndTurn advances the turn counter and hands the dice to the next player in
// turn order, unless a player has reached the win target, in which case the
// game ends instead.
func (s *Store) EndTurn(roomID string) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		state, err := s.loadGameState(tx, roomID)
		if err != nil {
			return err
		}
		if state.Phase == game.PhaseGameOver {
			return game.NewError(game.CodeWrongPhase, "the game is over")
		}

		var room models.Room
		if err := tx.Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("turn_order ASC")
		}).First(&room, "id = ?", roomID).Error; err != nil {
			return err
		}
		if len(room.Players) == 0 {
			return game.NewError(game.CodeGameNotFound, "game not found")
		}

		over, err := s.winCheck(tx, &room)
		if err != nil {
			return err
		}
		if over {
			if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
				Update("status", models.RoomFinished).Error; err != nil {
				return err
			}
			return tx.Model(&models.GameState{}).Where("room_id = ?", roomID).
				Update("phase", game.PhaseGameOver).Error
		}

		nextTurn := state.CurrentTurn + 1
		next := room.Players[nextTurn%len(room.Players)]
		return tx.Model(&models.GameState{}).Where("room_id = ?", roomID).
			Updates(map[string]interface{}{
				"current_turn":      nextTurn,
				"current_player_id": next.ID,
				"phase":             game.PhaseRolling,
			}).Error
	})
	if err != nil {
		if _, ok := asGameError(err); ok {
			return err
		}
		return internalErr("end turn", err)
	}

	s.notify(roomID)
	return nil
}

// winCheck reports whether any player's net worth has reached the room's win
// target.
func (s *Store) winCheck(tx *gorm.DB, room *models.Room) (bool, error) {
	prices, err := loadPrices(tx, room.ID)
	if err != nil {
		return false, err
	}
	var portfolios []models.Portfolio
	if err := tx.Where("room_id = ?", room.ID).Find(&portfolios).Error; err != nil {
		return false, err
	}
	byPlayer := make(map[string]map[game.StockType]int64)
	for _, p := range portfolios {
		if byPlayer[p.PlayerID] == nil {
			byPlayer[p.PlayerID] = make(map[game.StockType]int64)
		}
		byPlayer[p.PlayerID][p.StockType] = p.Shares
	}

	netWorths := make([]int64, 0, len(room.Players))
	for _, player := range room.Players {
		netWorths = append(netWorths, game.PortfolioValue(player.Cash, byPlayer[player.ID], prices))
	}
	return game.ShouldGameEnd(netWorths, room.ParsedSettings().WinTarget), nil
}

// MarkPlayerConnected flips only the connection flag. It runs outside the
// room lock: presence is not game-state-critical and last writer wins.
func (s *Store) MarkPlayerConnected(playerID string, connected bool) error {
	res := s.db.Model(&models.Player{}).Where("id = ?", playerID).
		Update("connected", connected)
	if res.Error != nil {
		return internalErr("mark player connected", res.Error)
	}
	if res.RowsAffected == 0 {
		return game.NewError(game.CodeNotFound, "player not found")
	}
	return nil
}

// GetPlayer looks up a player and verifies room membership, for the
// websocket handshake.
func (s *Store) GetPlayer(roomID, playerID string) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.NewError(game.CodeNotFound, "player not found")
		}
		return nil, internalErr("get player", err)
	}
	if player.RoomID != roomID {
		return nil, game.NewError(game.CodeUnauthorized, "player does not belong to this room")
	}
	return &player, nil
}

func (s *Store) loadGameState(tx *gorm.DB, roomID string) (*models.GameState, error) {
	var state models.GameState
	if err := tx.First(&state, "room_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.NewError(game.CodeGameNotFound, "game not found")
		}
		return nil, err
	}
	return &state, nil
}

// requireMember rejects operations referencing a player outside the room.
func (s *Store) requireMember(tx *gorm.DB, roomID, playerID string) (*models.Player, error) {
	var player models.Player
	if err := tx.First(&player, "id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.NewError(game.CodeNotFound, "player not found")
		}
		return nil, err
	}
	if player.RoomID != roomID {
		return nil, game.NewError(game.CodeUnauthorized, "player does not belong to this room")
	}
	return &player, nil
}

func loadPrices(tx *gorm.DB, roomID string) (map[game.StockType]int64, error) {
	var stocks []models.Stock
	if err := tx.Where("room_id = ?", roomID).Find(&stocks).Error; err != nil {
		return nil, err
	}
	prices := make(map[game.StockType]int64, len(stocks))
	for _, st := range stocks {
		prices[st.StockType] = st.CurrentPrice
	}
	return prices, nil
}

func asGameError(err error) (*game.Error, bool) {
	var ge *game.Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
