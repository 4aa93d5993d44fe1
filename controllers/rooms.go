package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocktick/ticker-backend/services"
)

type RoomController struct {
	Store *services.Store
}

type createRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateRoom creates a new game room and returns its invite code.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "MISSING_FIELDS", "room name is required")
		return
	}

	room, err := rc.Store.CreateRoom(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"roomId":     room.ID,
		"inviteCode": room.InviteCode,
		"name":       room.Name,
	})
}

type joinRoomRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

// JoinRoom adds a player to a room by invite code.
func (rc *RoomController) JoinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "MISSING_FIELDS", "invite code and player name are required")
		return
	}

	roomID, playerID, err := rc.Store.JoinRoom(req.InviteCode, req.PlayerName)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"roomId":     roomID,
		"playerId":   playerID,
		"playerName": req.PlayerName,
	})
}

// GetRoomInfo returns the lobby roster.
func (rc *RoomController) GetRoomInfo(c *gin.Context) {
	info, err := rc.Store.GetRoomInfo(c.Param("roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, info)
}

// StartGame begins play for a waiting room.
func (rc *RoomController) StartGame(c *gin.Context) {
	if err := rc.Store.StartGame(c.Param("roomId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "game started"})
}
