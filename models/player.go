package models

import "time"

type Player struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RoomID    string    `gorm:"size:36;not null;uniqueIndex:idx_room_player_name" json:"roomId"`
	Name      string    `gorm:"not null;uniqueIndex:idx_room_player_name" json:"name"`
	TurnOrder int       `gorm:"not null" json:"turnOrder"`
	Cash      int64     `gorm:"not null" json:"cash"` // cents
	Connected bool      `gorm:"not null;default:false" json:"connected"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Portfolios []Portfolio `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"portfolios,omitempty"`
}
