package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// ユーザーと友達エッジの永続化
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error

	// 友達セットをeager load
	ListFriends(ctx context.Context, userID string) ([]model.User, error)
	IsFriend(ctx context.Context, userID string, friendID string) (bool, error)

	// 双方向のエッジをまとめて書く/消す
	AddFriend(ctx context.Context, user *model.User, friend *model.User) error
	RemoveFriend(ctx context.Context, user *model.User, friend *model.User) error
}
