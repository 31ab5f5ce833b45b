package model

import "time"

type User struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserName       string    `json:"userName" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"column:password_hash;not null"`
	EmailConfirmed bool      `json:"emailConfirmed" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime"`

	// 友達関係は対称。A→BとB→Aの行を常に同一トランザクションで書く
	Friends []*User `json:"-" gorm:"many2many:user_friends"`
}
