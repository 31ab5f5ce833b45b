package usecase

import (
	"app/internal/domain/model"
	"time"
)

// API返却用のユーザーサマリ（エンティティは直接返さない）
type UserDTO struct {
	ID             string `json:"id"`
	UserName       string `json:"userName"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:             u.ID,
		UserName:       u.UserName,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmed,
	}
}

func toUserDTOs(users []model.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out
}

type FriendRequestDTO struct {
	ID           int64     `json:"id"`
	SenderID     string    `json:"senderId"`
	ReceiverID   string    `json:"receiverId"`
	SenderName   string    `json:"senderName,omitempty"`
	ReceiverName string    `json:"receiverName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toFriendRequestDTO(fr *model.FriendRequest) FriendRequestDTO {
	dto := FriendRequestDTO{
		ID:         fr.ID,
		SenderID:   fr.SenderID,
		ReceiverID: fr.ReceiverID,
		CreatedAt:  fr.CreatedAt,
	}
	if fr.Sender != nil {
		dto.SenderName = fr.Sender.UserName
	}
	if fr.Receiver != nil {
		dto.ReceiverName = fr.Receiver.UserName
	}
	return dto
}
