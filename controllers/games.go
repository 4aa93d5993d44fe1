package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocktick/ticker-backend/game"
	"github.com/stocktick/ticker-backend/services"
)

type GameController struct {
	Store *services.Store
}

// GetGameState returns the full room snapshot.
func (gc *GameController) GetGameState(c *gin.Context) {
	snapshot, err := gc.Store.GetGameState(c.Param("roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, snapshot)
}

type rollDiceRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// RollDice rolls for the current player.
func (gc *GameController) RollDice(c *gin.Context) {
	var req rollDiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "MISSING_FIELDS", "player ID is required")
		return
	}

	result, splitOccurred, err := gc.Store.RollDice(c.Param("roomId"), req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"diceResult":    result,
		"splitOccurred": splitOccurred,
	})
}

type tradeRequest struct {
	PlayerID  string `json:"playerId" binding:"required"`
	StockType string `json:"stockType" binding:"required"`
	Shares    int64  `json:"shares" binding:"required"`
}

func (gc *GameController) parseTrade(c *gin.Context) (*tradeRequest, game.StockType, bool) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "MISSING_FIELDS", "player ID, stock type, and shares are required")
		return nil, "", false
	}
	if req.Shares <= 0 {
		respondBadRequest(c, "INVALID_SHARES", "shares must be a positive number")
		return nil, "", false
	}
	stockType, err := game.ParseStockType(req.StockType)
	if err != nil {
		respondError(c, err)
		return nil, "", false
	}
	return &req, stockType, true
}

// BuyStock buys shares for a player.
func (gc *GameController) BuyStock(c *gin.Context) {
	req, stockType, ok := gc.parseTrade(c)
	if !ok {
		return
	}
	if err := gc.Store.BuyStock(c.Param("roomId"), req.PlayerID, stockType, req.Shares); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "stock purchased"})
}

// SellStock sells shares for a player.
func (gc *GameController) SellStock(c *gin.Context) {
	req, stockType, ok := gc.parseTrade(c)
	if !ok {
		return
	}
	if err := gc.Store.SellStock(c.Param("roomId"), req.PlayerID, stockType, req.Shares); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "stock sold"})
}

// EndTurn passes the dice to the next player.
func (gc *GameController) EndTurn(c *gin.Context) {
	if err := gc.Store.EndTurn(c.Param("roomId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "turn ended"})
}
