package model

import "time"

type Game struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID          int64     `json:"roomId" gorm:"not null;index"`
	NumPlayers      int       `json:"numPlayers" gorm:"not null"`
	NumTurns        int       `json:"numTurns" gorm:"not null;default:0"`
	Seconds         int       `json:"seconds" gorm:"not null;default:0"`
	CreatedByUserID string    `json:"createdByUserId" gorm:"type:uuid;not null;index"`
	WinnerID        string    `json:"winnerId" gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time `json:"createdAt" gorm:"not null"`
}
