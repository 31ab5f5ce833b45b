package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type FriendRequestUsecase struct {
	users          repo.UserRepository
	friendRequests repo.FriendRequestRepository
}

// DI
func NewFriendRequestUsecase(
	users repo.UserRepository,
	friendRequests repo.FriendRequestRepository,
) *FriendRequestUsecase {
	return &FriendRequestUsecase{
		users:          users,
		friendRequests: friendRequests,
	}
}

// フレンドリクエスト送信。
// (sender, receiver) の順序付きペアでpendingは最大1件
func (u *FriendRequestUsecase) Send(ctx context.Context, senderID string, receiverID string) (*FriendRequestDTO, error) {
	sender, err := u.users.FindByID(ctx, senderID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if sender == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if receiverID == senderID {
		return nil, NewHTTPError(http.StatusBadRequest, "cannot send a friend request to yourself")
	}

	receiver, err := u.users.FindByID(ctx, receiverID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if receiver == nil {
		return nil, NewHTTPError(http.StatusNotFound, "user not found")
	}

	isFriend, err := u.users.IsFriend(ctx, senderID, receiverID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if isFriend {
		return nil, NewHTTPError(http.StatusBadRequest, "already friends")
	}

	existing, err := u.friendRequests.FindPending(ctx, senderID, receiverID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if existing != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "friend request already sent")
	}

	request := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}

	if err := u.friendRequests.Create(ctx, request); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not send friend request")
	}

	dto := toFriendRequestDTO(request)
	return &dto, nil
}

// 自分が送ったリクエスト一覧
func (u *FriendRequestUsecase) ListSent(ctx context.Context, callerID string) ([]FriendRequestDTO, error) {
	requests, err := u.friendRequests.ListSent(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return toFriendRequestDTOs(requests), nil
}

// 自分が受け取ったリクエスト一覧
func (u *FriendRequestUsecase) ListReceived(ctx context.Context, callerID string) ([]FriendRequestDTO, error) {
	requests, err := u.friendRequests.ListReceived(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return toFriendRequestDTOs(requests), nil
}

// 拒否（受信者）または取り下げ（送信者）。リクエストは削除される
func (u *FriendRequestUsecase) Delete(ctx context.Context, callerID string, requestID int64) error {
	request, err := u.friendRequests.FindByID(ctx, requestID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if request == nil {
		return NewHTTPError(http.StatusNotFound, "friend request not found")
	}

	//当事者以外には存在を見せない
	if request.SenderID != callerID && request.ReceiverID != callerID {
		return NewHTTPError(http.StatusNotFound, "friend request not found")
	}

	if err := u.friendRequests.DeleteByID(ctx, request.ID); err != nil {
		if err == repo.ErrFriendRequestNotFound {
			return NewHTTPError(http.StatusNotFound, "friend request not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return nil
}

func toFriendRequestDTOs(requests []model.FriendRequest) []FriendRequestDTO {
	out := make([]FriendRequestDTO, 0, len(requests))
	for i := range requests {
		out = append(out, toFriendRequestDTO(&requests[i]))
	}
	return out
}
