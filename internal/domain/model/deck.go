package model

import "time"

type Deck struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Commander string    `json:"commander" gorm:"not null"`
	Colors    string    `json:"colors" gorm:"type:varchar(5);not null;default:''"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime"`
}
