package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocktick/ticker-backend/game"
)

var statusByCode = map[game.ErrorCode]int{
	game.CodeRoomNotFound:        http.StatusNotFound,
	game.CodeGameNotFound:        http.StatusNotFound,
	game.CodeNotFound:            http.StatusNotFound,
	game.CodeNameTaken:           http.StatusConflict,
	game.CodeRoomNotAccepting:    http.StatusBadRequest,
	game.CodeRoomFull:            http.StatusBadRequest,
	game.CodeInsufficientPlayers: http.StatusBadRequest,
	game.CodeInvalidLot:          http.StatusBadRequest,
	game.CodeInsufficientFunds:   http.StatusBadRequest,
	game.CodeInsufficientShares:  http.StatusBadRequest,
	game.CodeInvalidStockType:    http.StatusBadRequest,
	game.CodeInvalidTransaction:  http.StatusBadRequest,
	game.CodeWrongPhase:          http.StatusBadRequest,
	game.CodeNotYourTurn:         http.StatusBadRequest,
	game.CodeUnauthorized:        http.StatusForbidden,
}

func respondError(c *gin.Context, err error) {
	code := game.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondBadRequest(c *gin.Context, code game.ErrorCode, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}
