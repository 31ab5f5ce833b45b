package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrFriendRequestNotFound = errors.New("friend request not found")

// フレンドリクエストの保存・検索・削除
type FriendRequestRepository interface {
	Create(ctx context.Context, request *model.FriendRequest) error
	FindByID(ctx context.Context, id int64) (*model.FriendRequest, error)

	// (sender, receiver) の順序付きペアで1件検索。無ければ nil, nil
	FindPending(ctx context.Context, senderID string, receiverID string) (*model.FriendRequest, error)

	ListSent(ctx context.Context, userID string) ([]model.FriendRequest, error)
	ListReceived(ctx context.Context, userID string) ([]model.FriendRequest, error)

	DeleteByID(ctx context.Context, id int64) error

	// 送信分・受信分を問わずuserの全リクエストを削除
	DeleteAllForUser(ctx context.Context, userID string) error
}
