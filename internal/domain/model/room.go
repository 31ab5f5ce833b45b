package model

import "time"

// Roomは1ポッド分のセッション。Codeで合流する。
type Room struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomOwnerID string    `json:"roomOwnerId" gorm:"type:uuid;not null;index"`
	Code        string    `json:"code" gorm:"type:varchar(10);not null;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`

	Players []*User `json:"-" gorm:"many2many:room_players"`
}
