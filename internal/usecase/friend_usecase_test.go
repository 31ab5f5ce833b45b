package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFriendUsecaseForTest() (*FriendUsecase, *MockUserRepository, *MockFriendRequestRepository, *stubTxManager) {
	users := new(MockUserRepository)
	friendRequests := new(MockFriendRequestRepository)
	tx := &stubTxManager{repos: &stubTxRepos{
		users:          users,
		friendRequests: friendRequests,
	}}
	return NewFriendUsecase(users, friendRequests, tx), users, friendRequests, tx
}

func assertHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, wantStatus, he.Status)
}

func TestListFriends(t *testing.T) {
	u, users, _, _ := newFriendUsecaseForTest()

	callerID := uuid.NewString()
	users.On("ListFriends", mock.Anything, callerID).Return([]model.User{
		{ID: "f1", UserName: "hanako", Email: "hanako@example.com"},
	}, nil)

	got, err := u.ListFriends(context.Background(), callerID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "f1", got[0].ID)
	assert.Equal(t, "hanako", got[0].UserName)
}

func TestListFriends_UnknownCaller(t *testing.T) {
	u, users, _, _ := newFriendUsecaseForTest()

	users.On("ListFriends", mock.Anything, "ghost").Return(nil, repo.ErrUserNotFound)

	_, err := u.ListFriends(context.Background(), "ghost")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

// 受信者による承認：両方向エッジの追加とリクエスト削除が同時に起きる
func TestAddFriend_AcceptsPendingRequest(t *testing.T) {
	u, users, friendRequests, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString(), UserName: "taro"}
	friend := &model.User{ID: uuid.NewString(), UserName: "hanako"}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	// pendingは friend→caller 向きでなければならない
	friendRequests.On("FindPending", mock.Anything, friend.ID, caller.ID).
		Return(&model.FriendRequest{ID: 42, SenderID: friend.ID, ReceiverID: caller.ID}, nil)
	users.On("AddFriend", mock.Anything, caller, friend).Return(nil)
	friendRequests.On("DeleteByID", mock.Anything, int64(42)).Return(nil)

	err := u.AddFriend(context.Background(), caller.ID, friend.ID)
	require.NoError(t, err)

	users.AssertExpectations(t)
	friendRequests.AssertExpectations(t)
}

// 送信者側からは承認できない（逆向きのpendingしか無い場合は400）
func TestAddFriend_SenderCannotAccept(t *testing.T) {
	u, users, friendRequests, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	friend := &model.User{ID: uuid.NewString()}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	friendRequests.On("FindPending", mock.Anything, friend.ID, caller.ID).Return(nil, nil)

	err := u.AddFriend(context.Background(), caller.ID, friend.ID)
	assertHTTPError(t, err, http.StatusBadRequest)

	users.AssertNotCalled(t, "AddFriend", mock.Anything, mock.Anything, mock.Anything)
}

// 消費済みリクエストでの二重承認は400
func TestAddFriend_NoPendingRequest(t *testing.T) {
	u, users, friendRequests, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	friend := &model.User{ID: uuid.NewString()}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	friendRequests.On("FindPending", mock.Anything, friend.ID, caller.ID).Return(nil, nil)

	err := u.AddFriend(context.Background(), caller.ID, friend.ID)
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestAddFriend_TargetNotFound(t *testing.T) {
	u, users, _, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	err := u.AddFriend(context.Background(), caller.ID, "ghost")
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestAddFriend_UnknownCaller(t *testing.T) {
	u, users, _, _ := newFriendUsecaseForTest()

	users.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	err := u.AddFriend(context.Background(), "ghost", uuid.NewString())
	assertHTTPError(t, err, http.StatusUnauthorized)
}

// コミット時の競合は部分適用なしの500
func TestAddFriend_TxConflict(t *testing.T) {
	u, users, friendRequests, tx := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	friend := &model.User{ID: uuid.NewString()}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	friendRequests.On("FindPending", mock.Anything, friend.ID, caller.ID).
		Return(&model.FriendRequest{ID: 7, SenderID: friend.ID, ReceiverID: caller.ID}, nil)
	users.On("AddFriend", mock.Anything, caller, friend).Return(nil)
	friendRequests.On("DeleteByID", mock.Anything, int64(7)).Return(nil)
	tx.err = errors.New("serialization failure")

	err := u.AddFriend(context.Background(), caller.ID, friend.ID)
	assertHTTPError(t, err, http.StatusInternalServerError)
}

// 削除は両方向エッジ＋自分の全リクエスト掃除
func TestRemoveFriend(t *testing.T) {
	u, users, friendRequests, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	friend := &model.User{ID: uuid.NewString()}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	users.On("IsFriend", mock.Anything, caller.ID, friend.ID).Return(true, nil)
	users.On("RemoveFriend", mock.Anything, caller, friend).Return(nil)
	// 掃除対象は相手に限定されない
	friendRequests.On("DeleteAllForUser", mock.Anything, caller.ID).Return(nil)

	err := u.RemoveFriend(context.Background(), caller.ID, friend.ID)
	require.NoError(t, err)

	users.AssertExpectations(t)
	friendRequests.AssertExpectations(t)
}

func TestRemoveFriend_NotAFriend(t *testing.T) {
	u, users, _, _ := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("IsFriend", mock.Anything, caller.ID, "stranger").Return(false, nil)

	err := u.RemoveFriend(context.Background(), caller.ID, "stranger")
	assertHTTPError(t, err, http.StatusNotFound)

	users.AssertNotCalled(t, "RemoveFriend", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveFriend_TxFailure(t *testing.T) {
	u, users, friendRequests, tx := newFriendUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	friend := &model.User{ID: uuid.NewString()}

	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	users.On("FindByID", mock.Anything, friend.ID).Return(friend, nil)
	users.On("IsFriend", mock.Anything, caller.ID, friend.ID).Return(true, nil)
	users.On("RemoveFriend", mock.Anything, caller, friend).Return(nil)
	friendRequests.On("DeleteAllForUser", mock.Anything, caller.ID).Return(nil)
	tx.err = errors.New("serialization failure")

	err := u.RemoveFriend(context.Background(), caller.ID, friend.ID)
	assertHTTPError(t, err, http.StatusInternalServerError)
}
