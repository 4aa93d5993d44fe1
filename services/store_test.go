package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stocktick/ticker-backend/config"
	"github.com/stocktick/ticker-backend/game"
	"github.com/stocktick/ticker-backend/models"
)

// scriptedRoller replays queued rolls so tests control the dice.
type scriptedRoller struct {
	mu    sync.Mutex
	queue []game.DiceResult
}

func (r *scriptedRoller) script(stockDie, actionDie, amountDie int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, game.Resolve(stockDie, actionDie, amountDie))
}

func (r *scriptedRoller) Roll() game.DiceResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		// harmless default: gold dividend with no holders pays nothing
		return game.Resolve(1, 5, 1)
	}
	res := r.queue[0]
	r.queue = r.queue[1:]
	return res
}

// recordingNotifier captures post-commit notifications.
type recordingNotifier struct {
	mu    sync.Mutex
	rooms []string
}

func (n *recordingNotifier) NotifyRoomStateChanged(roomID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rooms = append(n.rooms, roomID)
}

func (n *recordingNotifier) count(roomID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, id := range n.rooms {
		if id == roomID {
			c++
		}
	}
	return c
}

func newTestStore(t *testing.T) (*Store, *scriptedRoller, *recordingNotifier) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	roller := &scriptedRoller{}
	notifier := &recordingNotifier{}
	return NewStore(db, notifier, roller), roller, notifier
}

func mustJoin(t *testing.T, s *Store, inviteCode, name string) string {
	t.Helper()
	_, playerID, err := s.JoinRoom(inviteCode, name)
	require.NoError(t, err)
	return playerID
}

// startedGame creates a room, joins the named players, and starts play.
func startedGame(t *testing.T, s *Store, names ...string) (roomID string, playerIDs []string) {
	t.Helper()
	room, err := s.CreateRoom("test table")
	require.NoError(t, err)
	for _, name := range names {
		playerIDs = append(playerIDs, mustJoin(t, s, room.InviteCode, name))
	}
	require.NoError(t, s.StartGame(room.ID))
	return room.ID, playerIDs
}

func setPrice(t *testing.T, s *Store, roomID string, st game.StockType, price int64) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.Stock{}).
		Where("room_id = ? AND stock_type = ?", roomID, st).
		Update("current_price", price).Error)
}

func currentPrice(t *testing.T, s *Store, roomID string, st game.StockType) int64 {
	t.Helper()
	var stock models.Stock
	require.NoError(t, s.db.Where("room_id = ? AND stock_type = ?", roomID, st).First(&stock).Error)
	return stock.CurrentPrice
}

func playerCash(t *testing.T, s *Store, playerID string) int64 {
	t.Helper()
	var player models.Player
	require.NoError(t, s.db.First(&player, "id = ?", playerID).Error)
	return player.Cash
}

func playerShares(t *testing.T, s *Store, playerID string, st game.StockType) int64 {
	t.Helper()
	var pf models.Portfolio
	require.NoError(t, s.db.Where("player_id = ? AND stock_type = ?", playerID, st).First(&pf).Error)
	return pf.Shares
}

func gameState(t *testing.T, s *Store, roomID string) models.GameState {
	t.Helper()
	var state models.GameState
	require.NoError(t, s.db.First(&state, "room_id = ?", roomID).Error)
	return state
}

func TestCreateRoom(t *testing.T) {
	s, _, _ := newTestStore(t)

	room, err := s.CreateRoom("friday night")
	require.NoError(t, err)
	assert.Equal(t, models.RoomWaiting, room.Status)
	assert.Equal(t, game.MaxPlayers, room.MaxPlayers)
	assert.Len(t, room.InviteCode, 6)

	var stocks []models.Stock
	require.NoError(t, s.db.Where("room_id = ?", room.ID).Find(&stocks).Error)
	require.Len(t, stocks, 6)
	for _, stock := range stocks {
		assert.Equal(t, game.StartingPrice, stock.CurrentPrice)
	}

	state := gameState(t, s, room.ID)
	assert.Equal(t, 0, state.CurrentTurn)
	assert.Nil(t, state.CurrentPlayerID)
	assert.Equal(t, game.PhaseWaiting, state.Phase)
}

func TestJoinRoom(t *testing.T) {
	s, _, notifier := newTestStore(t)
	room, err := s.CreateRoom("joiners")
	require.NoError(t, err)

	t.Run("unknown invite code", func(t *testing.T) {
		_, _, err := s.JoinRoom("ZZZZZZ", "alice")
		assert.Equal(t, game.CodeRoomNotFound, game.CodeOf(err))
	})

	t.Run("join assigns turn order, cash, and portfolios", func(t *testing.T) {
		roomID, aliceID, err := s.JoinRoom(room.InviteCode, "alice")
		require.NoError(t, err)
		assert.Equal(t, room.ID, roomID)
		assert.Equal(t, game.StartingCash, playerCash(t, s, aliceID))

		var alice models.Player
		require.NoError(t, s.db.First(&alice, "id = ?", aliceID).Error)
		assert.Equal(t, 0, alice.TurnOrder)

		var portfolios []models.Portfolio
		require.NoError(t, s.db.Where("player_id = ?", aliceID).Find(&portfolios).Error)
		require.Len(t, portfolios, 6)
		for _, pf := range portfolios {
			assert.Zero(t, pf.Shares)
		}
		assert.Greater(t, notifier.count(room.ID), 0)
	})

	t.Run("duplicate name rejected, case-sensitive", func(t *testing.T) {
		_, _, err := s.JoinRoom(room.InviteCode, "alice")
		assert.Equal(t, game.CodeNameTaken, game.CodeOf(err))

		_, _, err = s.JoinRoom(room.InviteCode, "Alice")
		assert.NoError(t, err)
	})

	t.Run("same name allowed in a different room", func(t *testing.T) {
		other, err := s.CreateRoom("other table")
		require.NoError(t, err)
		_, _, err = s.JoinRoom(other.InviteCode, "alice")
		assert.NoError(t, err)
	})

	t.Run("room full after six players", func(t *testing.T) {
		full, err := s.CreateRoom("packed")
		require.NoError(t, err)
		for i := 0; i < 6; i++ {
			mustJoin(t, s, full.InviteCode, fmt.Sprintf("p%d", i))
		}
		_, _, err = s.JoinRoom(full.InviteCode, "p6")
		assert.Equal(t, game.CodeRoomFull, game.CodeOf(err))
	})

	t.Run("no joining after start", func(t *testing.T) {
		started, err := s.CreateRoom("underway")
		require.NoError(t, err)
		mustJoin(t, s, started.InviteCode, "a")
		mustJoin(t, s, started.InviteCode, "b")
		require.NoError(t, s.StartGame(started.ID))

		_, _, err = s.JoinRoom(started.InviteCode, "late")
		assert.Equal(t, game.CodeRoomNotAccepting, game.CodeOf(err))
	})
}

func TestStartGame(t *testing.T) {
	s, _, _ := newTestStore(t)

	t.Run("unknown room", func(t *testing.T) {
		err := s.StartGame("nope")
		assert.Equal(t, game.CodeRoomNotFound, game.CodeOf(err))
	})

	t.Run("needs two players", func(t *testing.T) {
		room, err := s.CreateRoom("lonely")
		require.NoError(t, err)
		mustJoin(t, s, room.InviteCode, "solo")
		err = s.StartGame(room.ID)
		assert.Equal(t, game.CodeInsufficientPlayers, game.CodeOf(err))
	})

	t.Run("start hands the dice to turn order zero", func(t *testing.T) {
		room, err := s.CreateRoom("ready")
		require.NoError(t, err)
		first := mustJoin(t, s, room.InviteCode, "a")
		mustJoin(t, s, room.InviteCode, "b")
		require.NoError(t, s.StartGame(room.ID))

		var fresh models.Room
		require.NoError(t, s.db.First(&fresh, "id = ?", room.ID).Error)
		assert.Equal(t, models.RoomPlaying, fresh.Status)

		state := gameState(t, s, room.ID)
		assert.Equal(t, game.PhaseRolling, state.Phase)
		require.NotNil(t, state.CurrentPlayerID)
		assert.Equal(t, first, *state.CurrentPlayerID)

		// starting twice is rejected
		err = s.StartGame(room.ID)
		assert.Equal(t, game.CodeWrongPhase, game.CodeOf(err))
	})
}

func TestRollDice(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	t.Run("roll moves the price and the phase", func(t *testing.T) {
		roller.script(1, 3, 3) // gold up 10
		result, split, err := s.RollDice(roomID, players[0])
		require.NoError(t, err)
		assert.False(t, split)
		assert.Equal(t, game.Gold, result.Stock)
		assert.Equal(t, int64(110), currentPrice(t, s, roomID, game.Gold))
		assert.Equal(t, game.PhaseTrading, gameState(t, s, roomID).Phase)

		var rolls []models.DiceRoll
		require.NoError(t, s.db.Where("room_id = ?", roomID).Find(&rolls).Error)
		require.Len(t, rolls, 1)
		assert.Equal(t, players[0], rolls[0].PlayerID)
		assert.Equal(t, 1, rolls[0].StockDie)
		assert.Equal(t, game.ActionUp, rolls[0].ResultAction)
	})

	t.Run("rolling in trading phase is rejected", func(t *testing.T) {
		_, _, err := s.RollDice(roomID, players[0])
		assert.Equal(t, game.CodeWrongPhase, game.CodeOf(err))
	})

	t.Run("only the current player may roll", func(t *testing.T) {
		require.NoError(t, s.EndTurn(roomID)) // now player b, rolling
		_, _, err := s.RollDice(roomID, players[0])
		assert.Equal(t, game.CodeNotYourTurn, game.CodeOf(err))
	})

	t.Run("player from another room is rejected", func(t *testing.T) {
		_, outsiders := startedGame(t, s, "x", "y")
		_, _, err := s.RollDice(roomID, outsiders[0])
		assert.Equal(t, game.CodeUnauthorized, game.CodeOf(err))
	})
}

func TestRollDiceSplit(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	// a buys 1000 gold during the first trading phase
	roller.script(3, 5, 1) // bonds dividend, no holders
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)
	require.NoError(t, s.BuyStock(roomID, players[0], game.Gold, 1000))
	require.NoError(t, s.EndTurn(roomID))

	setPrice(t, s, roomID, game.Gold, 190)

	roller.script(1, 3, 5) // gold up 20 -> 210 -> split
	_, split, err := s.RollDice(roomID, players[1])
	require.NoError(t, err)
	assert.True(t, split)
	assert.Equal(t, game.StartingPrice, currentPrice(t, s, roomID, game.Gold))
	assert.Equal(t, int64(2000), playerShares(t, s, players[0], game.Gold))
	assert.Zero(t, playerShares(t, s, players[1], game.Gold))
}

func TestRollDiceDividend(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	// a buys 500 silver at the starting price
	roller.script(3, 5, 1) // bonds dividend, no holders
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)
	require.NoError(t, s.BuyStock(roomID, players[0], game.Silver, 500))
	cashAfterBuy := playerCash(t, s, players[0])
	require.NoError(t, s.EndTurn(roomID))

	t.Run("below starting price pays nothing", func(t *testing.T) {
		setPrice(t, s, roomID, game.Silver, 90)
		roller.script(2, 5, 3) // silver dividend 10¢
		_, _, err := s.RollDice(roomID, players[1])
		require.NoError(t, err)
		assert.Equal(t, cashAfterBuy, playerCash(t, s, players[0]))

		var count int64
		require.NoError(t, s.db.Model(&models.Transaction{}).
			Where("room_id = ? AND action = ?", roomID, models.DividendTransaction).
			Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("at or above starting price pays per share", func(t *testing.T) {
		require.NoError(t, s.EndTurn(roomID)) // back to a, rolling
		setPrice(t, s, roomID, game.Silver, 150)
		roller.script(2, 5, 3) // silver dividend 10¢
		_, _, err := s.RollDice(roomID, players[0])
		require.NoError(t, err)

		// 500 shares × 10¢
		assert.Equal(t, cashAfterBuy+5000, playerCash(t, s, players[0]))
		assert.Equal(t, int64(150), currentPrice(t, s, roomID, game.Silver))

		var txs []models.Transaction
		require.NoError(t, s.db.Where("room_id = ? AND action = ?", roomID, models.DividendTransaction).
			Find(&txs).Error)
		require.Len(t, txs, 1)
		assert.Equal(t, players[0], txs[0].PlayerID)
		assert.Equal(t, int64(500), txs[0].Shares)
		assert.Equal(t, int64(5000), txs[0].TotalAmount)
	})
}

func TestBuySellRoundTrip(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	roller.script(3, 5, 1) // bonds dividend, price untouched
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)

	for _, lot := range game.ShareLots {
		require.NoError(t, s.BuyStock(roomID, players[0], game.Gold, lot))
		assert.Equal(t, game.StartingCash-lot*game.StartingPrice, playerCash(t, s, players[0]))
		assert.Equal(t, lot, playerShares(t, s, players[0], game.Gold))

		require.NoError(t, s.SellStock(roomID, players[0], game.Gold, lot))
		assert.Equal(t, game.StartingCash, playerCash(t, s, players[0]), "lot %d", lot)
		assert.Zero(t, playerShares(t, s, players[0], game.Gold))
	}

	var txCount int64
	require.NoError(t, s.db.Model(&models.Transaction{}).Where("room_id = ?", roomID).Count(&txCount).Error)
	assert.Equal(t, int64(2*len(game.ShareLots)), txCount)
}

func TestTradeValidationInsideTransaction(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	t.Run("trading before a roll is rejected", func(t *testing.T) {
		err := s.BuyStock(roomID, players[0], game.Gold, 500)
		assert.Equal(t, game.CodeWrongPhase, game.CodeOf(err))
	})

	roller.script(3, 5, 1)
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)

	t.Run("invalid lot", func(t *testing.T) {
		err := s.BuyStock(roomID, players[0], game.Gold, 300)
		assert.Equal(t, game.CodeInvalidTransaction, game.CodeOf(err))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		setPrice(t, s, roomID, game.Oil, 150)
		// 5000 × 150 = 750000 > 500000
		err := s.BuyStock(roomID, players[0], game.Oil, 5000)
		assert.Equal(t, game.CodeInvalidTransaction, game.CodeOf(err))
		assert.Equal(t, game.StartingCash, playerCash(t, s, players[0]))
	})

	t.Run("selling more than owned never goes negative", func(t *testing.T) {
		require.NoError(t, s.BuyStock(roomID, players[0], game.Grain, 500))
		err := s.SellStock(roomID, players[0], game.Grain, 1000)
		assert.Equal(t, game.CodeInvalidTransaction, game.CodeOf(err))
		assert.Equal(t, int64(500), playerShares(t, s, players[0], game.Grain))
	})

	t.Run("outsider cannot trade", func(t *testing.T) {
		_, outsiders := startedGame(t, s, "x", "y")
		err := s.BuyStock(roomID, outsiders[0], game.Gold, 500)
		assert.Equal(t, game.CodeUnauthorized, game.CodeOf(err))
	})
}

func TestPriceInvariantAfterRolls(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	scenarios := []struct {
		price int64
		rolls [3]int
	}{
		{195, [3]int{1, 3, 5}}, // up 20 -> split -> 100
		{5, [3]int{1, 1, 5}},   // down 20 -> reset -> 100
		{199, [3]int{1, 4, 1}}, // up 5 -> split -> 100
		{150, [3]int{1, 3, 3}}, // up 10 -> 160
		{25, [3]int{1, 2, 5}},  // down 20 -> 5
		{100, [3]int{1, 5, 5}}, // dividend, unchanged
	}

	turn := 0
	for _, sc := range scenarios {
		setPrice(t, s, roomID, game.Gold, sc.price)
		roller.script(sc.rolls[0], sc.rolls[1], sc.rolls[2])
		_, _, err := s.RollDice(roomID, players[turn%2])
		require.NoError(t, err)

		price := currentPrice(t, s, roomID, game.Gold)
		assert.True(t, price > 0 && price < game.SplitPrice,
			"price %d escaped (0, 200) after roll from %d", price, sc.price)

		require.NoError(t, s.EndTurn(roomID))
		turn++
	}
}

func TestTurnRotation(t *testing.T) {
	s, _, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "p0", "p1", "p2")

	expected := []struct {
		turn    int
		current string
	}{
		{1, players[1]},
		{2, players[2]},
		{3, players[0]},
	}
	for _, want := range expected {
		require.NoError(t, s.EndTurn(roomID))
		state := gameState(t, s, roomID)
		assert.Equal(t, want.turn, state.CurrentTurn)
		require.NotNil(t, state.CurrentPlayerID)
		assert.Equal(t, want.current, *state.CurrentPlayerID)
		assert.Equal(t, game.PhaseRolling, state.Phase)
	}
}

func TestEndTurnUnknownRoom(t *testing.T) {
	s, _, _ := newTestStore(t)
	err := s.EndTurn("missing")
	assert.Equal(t, game.CodeGameNotFound, game.CodeOf(err))
}

func TestWinCondition(t *testing.T) {
	s, _, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	require.NoError(t, s.db.Model(&models.Player{}).Where("id = ?", players[0]).
		Update("cash", game.DefaultWinTarget).Error)

	require.NoError(t, s.EndTurn(roomID))
	state := gameState(t, s, roomID)
	assert.Equal(t, game.PhaseGameOver, state.Phase)

	var room models.Room
	require.NoError(t, s.db.First(&room, "id = ?", roomID).Error)
	assert.Equal(t, models.RoomFinished, room.Status)

	err := s.EndTurn(roomID)
	assert.Equal(t, game.CodeWrongPhase, game.CodeOf(err))
}

func TestConcurrentBuysNeverOverspend(t *testing.T) {
	s, roller, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	roller.script(3, 5, 1)
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)

	// Each buy costs 2000 × 100 = 200000; only two fit into 500000.
	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.BuyStock(roomID, players[0], game.Gold, 2000); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, int64(100000), playerCash(t, s, players[0]))
	assert.Equal(t, int64(4000), playerShares(t, s, players[0], game.Gold))
}

func TestGetGameState(t *testing.T) {
	s, roller, _ := newTestStore(t)

	t.Run("unknown room", func(t *testing.T) {
		_, err := s.GetGameState("missing")
		assert.Equal(t, game.CodeGameNotFound, game.CodeOf(err))
	})

	roomID, players := startedGame(t, s, "a", "b")
	roller.script(3, 5, 1)
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)
	require.NoError(t, s.BuyStock(roomID, players[0], game.Gold, 1000))

	snapshot, err := s.GetGameState(roomID)
	require.NoError(t, err)
	assert.Equal(t, roomID, snapshot.RoomID)
	assert.Equal(t, game.PhaseTrading, snapshot.Phase)
	require.NotNil(t, snapshot.CurrentPlayerID)
	assert.Equal(t, players[0], *snapshot.CurrentPlayerID)
	require.Len(t, snapshot.Players, 2)
	require.Len(t, snapshot.Stocks, 6)

	a := snapshot.Players[0]
	assert.Equal(t, players[0], a.PlayerID)
	assert.Equal(t, game.StartingCash-1000*game.StartingPrice, a.Cash)
	assert.Equal(t, int64(1000), a.Stocks[game.Gold])
	// net worth is unchanged by a buy at the same price
	assert.Equal(t, game.StartingCash, a.TotalValue)

	b := snapshot.Players[1]
	assert.Equal(t, game.StartingCash, b.TotalValue)
}

func TestMarkPlayerConnected(t *testing.T) {
	s, _, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	require.NoError(t, s.MarkPlayerConnected(players[0], true))
	snapshot, err := s.GetGameState(roomID)
	require.NoError(t, err)
	assert.True(t, snapshot.Players[0].Connected)
	assert.False(t, snapshot.Players[1].Connected)

	require.NoError(t, s.MarkPlayerConnected(players[0], false))
	snapshot, err = s.GetGameState(roomID)
	require.NoError(t, err)
	assert.False(t, snapshot.Players[0].Connected)

	err = s.MarkPlayerConnected("missing", true)
	assert.Equal(t, game.CodeNotFound, game.CodeOf(err))
}

func TestNotifierFiresAfterMutations(t *testing.T) {
	s, roller, notifier := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")

	before := notifier.count(roomID)
	roller.script(3, 5, 1)
	_, _, err := s.RollDice(roomID, players[0])
	require.NoError(t, err)
	require.NoError(t, s.BuyStock(roomID, players[0], game.Gold, 500))
	require.NoError(t, s.EndTurn(roomID))

	assert.Equal(t, before+3, notifier.count(roomID))
}

func TestGetRoomInfo(t *testing.T) {
	s, _, _ := newTestStore(t)
	room, err := s.CreateRoom("lobby view")
	require.NoError(t, err)
	aliceID := mustJoin(t, s, room.InviteCode, "alice")
	mustJoin(t, s, room.InviteCode, "bob")

	info, err := s.GetRoomInfo(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.InviteCode, info.InviteCode)
	assert.Equal(t, models.RoomWaiting, info.Status)
	require.Len(t, info.Players, 2)
	assert.Equal(t, aliceID, info.Players[0].PlayerID)
	assert.Equal(t, "alice", info.Players[0].Name)

	_, err = s.GetRoomInfo("missing")
	assert.Equal(t, game.CodeRoomNotFound, game.CodeOf(err))
}

func TestGetPlayer(t *testing.T) {
	s, _, _ := newTestStore(t)
	roomID, players := startedGame(t, s, "a", "b")
	otherRoomID, _ := startedGame(t, s, "x", "y")

	p, err := s.GetPlayer(roomID, players[0])
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name)

	_, err = s.GetPlayer(otherRoomID, players[0])
	assert.Equal(t, game.CodeUnauthorized, game.CodeOf(err))

	_, err = s.GetPlayer(roomID, "missing")
	assert.Equal(t, game.CodeNotFound, game.CodeOf(err))
}
