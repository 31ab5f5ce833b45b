package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

type FriendUsecase struct {
	users          repo.UserRepository
	friendRequests repo.FriendRequestRepository
	tx             repo.TransactionManager
}

// DI
func NewFriendUsecase(
	users repo.UserRepository,
	friendRequests repo.FriendRequestRepository,
	tx repo.TransactionManager,
) *FriendUsecase {
	return &FriendUsecase{
		users:          users,
		friendRequests: friendRequests,
		tx:             tx,
	}
}

// 自分の友達一覧
func (u *FriendUsecase) ListFriends(ctx context.Context, callerID string) ([]UserDTO, error) {
	friends, err := u.users.ListFriends(ctx, callerID)
	if err != nil {
		if err == repo.ErrUserNotFound {
			return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return toUserDTOs(friends), nil
}

// 受信済みリクエストの承認＝友達追加。
// 受信者だけが承認できる（送った側からは追加できない）
func (u *FriendUsecase) AddFriend(ctx context.Context, callerID string, friendID string) error {
	caller, err := u.users.FindByID(ctx, callerID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if caller == nil {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	friend, err := u.users.FindByID(ctx, friendID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if friend == nil {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}

	//friend→caller のpendingリクエストが前提条件
	request, err := u.friendRequests.FindPending(ctx, friendID, callerID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if request == nil {
		return NewHTTPError(http.StatusBadRequest, "no pending friend request")
	}

	//両方向のエッジ追加とリクエスト消費を1トランザクションで
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().AddFriend(ctx, caller, friend); err != nil {
			return err
		}
		return r.FriendRequests().DeleteByID(ctx, request.ID)
	})
	if err != nil {
		//競合や制約違反。部分適用はされない。呼び出し側がリトライする
		return NewHTTPError(http.StatusInternalServerError, "could not add friend")
	}

	return nil
}

// 友達削除。
// 両方向のエッジを消し、さらに自分の送信・受信リクエストを全て掃除する
// （削除相手に限らない。意図的に広い掃除）
func (u *FriendUsecase) RemoveFriend(ctx context.Context, callerID string, friendID string) error {
	caller, err := u.users.FindByID(ctx, callerID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if caller == nil {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	isFriend, err := u.users.IsFriend(ctx, callerID, friendID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if !isFriend {
		return NewHTTPError(http.StatusNotFound, "not a friend")
	}

	friend, err := u.users.FindByID(ctx, friendID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if friend == nil {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().RemoveFriend(ctx, caller, friend); err != nil {
			return err
		}
		return r.FriendRequests().DeleteAllForUser(ctx, callerID)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "could not remove friend")
	}

	return nil
}
