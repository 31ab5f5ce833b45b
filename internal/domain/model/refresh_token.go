package model

import "time"

type RefreshToken struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Token     string    `json:"-" gorm:"not null;uniqueIndex"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null;index"`
	IsRevoked bool      `json:"isRevoked" gorm:"not null;default:false"`
}
