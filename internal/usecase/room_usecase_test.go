package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoomUsecaseForTest() (*RoomUsecase, *MockRoomRepository, *MockUserRepository, *stubTxManager) {
	rooms := new(MockRoomRepository)
	users := new(MockUserRepository)
	tx := &stubTxManager{repos: &stubTxRepos{
		users: users,
		rooms: rooms,
	}}
	return NewRoomUsecase(rooms, users, tx), rooms, users, tx
}

func TestNewRoomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := newRoomCode()
		require.NoError(t, err)
		assert.Len(t, code, roomCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(roomCodeAlphabet, r), "unexpected rune %q in %q", r, code)
		}
		seen[code] = true
	}
	// 100回で全部同じ、は実質あり得ない
	assert.Greater(t, len(seen), 1)
}

func TestCreateRoom(t *testing.T) {
	u, rooms, users, _ := newRoomUsecaseForTest()

	owner := &model.User{ID: uuid.NewString(), UserName: "taro"}
	users.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Room).ID = 1
		}).
		Return(nil)
	rooms.On("AddPlayer", mock.Anything, mock.AnythingOfType("*model.Room"), owner).Return(nil)

	dto, err := u.Create(context.Background(), owner.ID)
	require.NoError(t, err)

	assert.Equal(t, owner.ID, dto.RoomOwnerID)
	assert.Len(t, dto.Code, roomCodeLength)
	// オーナーは作成と同時に入室している
	require.Len(t, dto.Players, 1)
	assert.Equal(t, owner.ID, dto.Players[0].ID)
}

// コード衝突でinsertに失敗したら作り直す
func TestCreateRoom_RetriesOnCodeCollision(t *testing.T) {
	u, rooms, users, _ := newRoomUsecaseForTest()

	owner := &model.User{ID: uuid.NewString()}
	users.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).Return(assert.AnError).Twice()
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).Return(nil).Once()
	rooms.On("AddPlayer", mock.Anything, mock.Anything, owner).Return(nil)

	dto, err := u.Create(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, dto.Code)
	rooms.AssertNumberOfCalls(t, "Create", 3)
}

// ルーム行の作成とオーナー入室は同じトランザクション。
// 入室に失敗した試行はロールバックされ、0人のルームが残らない
func TestCreateRoom_JoinFailureRollsBackRoom(t *testing.T) {
	u, rooms, users, tx := newRoomUsecaseForTest()

	owner := &model.User{ID: uuid.NewString()}
	users.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).Return(nil)
	rooms.On("AddPlayer", mock.Anything, mock.AnythingOfType("*model.Room"), owner).Return(assert.AnError)

	_, err := u.Create(context.Background(), owner.ID)
	assertHTTPError(t, err, http.StatusInternalServerError)

	// 各試行ともcreate+joinがトランザクション内で走っている
	assert.Equal(t, 5, tx.calls)
	rooms.AssertNumberOfCalls(t, "Create", tx.calls)
	rooms.AssertNumberOfCalls(t, "AddPlayer", tx.calls)
}

func TestCreateRoom_TxConflict(t *testing.T) {
	u, rooms, users, tx := newRoomUsecaseForTest()

	owner := &model.User{ID: uuid.NewString()}
	users.On("FindByID", mock.Anything, owner.ID).Return(owner, nil)
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*model.Room")).Return(nil)
	rooms.On("AddPlayer", mock.Anything, mock.AnythingOfType("*model.Room"), owner).Return(nil)
	tx.err = assert.AnError

	_, err := u.Create(context.Background(), owner.ID)
	assertHTTPError(t, err, http.StatusInternalServerError)
}

func TestGetRoomByCode_NotFound(t *testing.T) {
	u, rooms, _, _ := newRoomUsecaseForTest()

	rooms.On("FindByCode", mock.Anything, "ZZZZZZ").Return(nil, nil)

	_, err := u.GetByCode(context.Background(), "ZZZZZZ")
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestJoinRoom(t *testing.T) {
	u, rooms, users, _ := newRoomUsecaseForTest()

	caller := &model.User{ID: uuid.NewString(), UserName: "hanako"}
	room := &model.Room{ID: 1, RoomOwnerID: uuid.NewString(), Code: "ABC234"}

	rooms.On("FindByCode", mock.Anything, room.Code).Return(room, nil)
	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)
	rooms.On("AddPlayer", mock.Anything, room, caller).Return(nil)

	dto, err := u.Join(context.Background(), room.Code, caller.ID)
	require.NoError(t, err)
	require.Len(t, dto.Players, 1)
	assert.Equal(t, caller.ID, dto.Players[0].ID)
}

// 入室済みの再joinは何もしないで現状を返す
func TestJoinRoom_AlreadyJoined(t *testing.T) {
	u, rooms, users, _ := newRoomUsecaseForTest()

	caller := &model.User{ID: uuid.NewString()}
	room := &model.Room{ID: 1, Code: "ABC234", Players: []*model.User{caller}}

	rooms.On("FindByCode", mock.Anything, room.Code).Return(room, nil)
	users.On("FindByID", mock.Anything, caller.ID).Return(caller, nil)

	dto, err := u.Join(context.Background(), room.Code, caller.ID)
	require.NoError(t, err)
	assert.Len(t, dto.Players, 1)

	rooms.AssertNotCalled(t, "AddPlayer", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeaveRoom(t *testing.T) {
	u, rooms, _, _ := newRoomUsecaseForTest()

	member := &model.User{ID: uuid.NewString()}
	room := &model.Room{ID: 1, Code: "ABC234", Players: []*model.User{member}}

	rooms.On("FindByCode", mock.Anything, room.Code).Return(room, nil)
	rooms.On("RemovePlayer", mock.Anything, room, member).Return(nil)

	assert.NoError(t, u.Leave(context.Background(), room.Code, member.ID))
	rooms.AssertExpectations(t)
}

func TestLeaveRoom_NotInRoom(t *testing.T) {
	u, rooms, _, _ := newRoomUsecaseForTest()

	room := &model.Room{ID: 1, Code: "ABC234"}
	rooms.On("FindByCode", mock.Anything, room.Code).Return(room, nil)

	err := u.Leave(context.Background(), room.Code, uuid.NewString())
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestDeleteRoom_OwnerOnly(t *testing.T) {
	u, rooms, _, _ := newRoomUsecaseForTest()

	ownerID := uuid.NewString()
	room := &model.Room{ID: 1, RoomOwnerID: ownerID, Code: "ABC234"}
	rooms.On("FindByID", mock.Anything, int64(1)).Return(room, nil)

	// 他人のルームは存在しない扱い
	err := u.Delete(context.Background(), uuid.NewString(), 1)
	assertHTTPError(t, err, http.StatusNotFound)
	rooms.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)

	rooms.On("DeleteByID", mock.Anything, int64(1)).Return(nil)
	assert.NoError(t, u.Delete(context.Background(), ownerID, 1))
}
