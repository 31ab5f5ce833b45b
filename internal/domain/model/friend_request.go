package model

import "time"

// FriendRequestは送信者→受信者の有向エッジ。
// 承認・拒否・取り下げで削除される（状態遷移はしない）。
type FriendRequest struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SenderID   string    `json:"senderId" gorm:"type:uuid;not null;index;uniqueIndex:idx_sender_receiver"`
	ReceiverID string    `json:"receiverId" gorm:"type:uuid;not null;index;uniqueIndex:idx_sender_receiver"`
	CreatedAt  time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`

	Sender   *User `json:"-" gorm:"foreignKey:SenderID"`
	Receiver *User `json:"-" gorm:"foreignKey:ReceiverID"`
}
