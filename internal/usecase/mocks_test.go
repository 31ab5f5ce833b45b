package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ListFriends(ctx context.Context, userID string) ([]model.User, error) {
	args := m.Called(ctx, userID)
	friends, _ := args.Get(0).([]model.User)
	return friends, args.Error(1)
}

func (m *MockUserRepository) IsFriend(ctx context.Context, userID string, friendID string) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, user *model.User, friend *model.User) error {
	args := m.Called(ctx, user, friend)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFriend(ctx context.Context, user *model.User, friend *model.User) error {
	args := m.Called(ctx, user, friend)
	return args.Error(0)
}

// =====================
// Mock: FriendRequestRepository
// =====================

type MockFriendRequestRepository struct {
	mock.Mock
}

func (m *MockFriendRequestRepository) Create(ctx context.Context, request *model.FriendRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockFriendRequestRepository) FindByID(ctx context.Context, id int64) (*model.FriendRequest, error) {
	args := m.Called(ctx, id)
	fr, _ := args.Get(0).(*model.FriendRequest)
	return fr, args.Error(1)
}

func (m *MockFriendRequestRepository) FindPending(ctx context.Context, senderID string, receiverID string) (*model.FriendRequest, error) {
	args := m.Called(ctx, senderID, receiverID)
	fr, _ := args.Get(0).(*model.FriendRequest)
	return fr, args.Error(1)
}

func (m *MockFriendRequestRepository) ListSent(ctx context.Context, userID string) ([]model.FriendRequest, error) {
	args := m.Called(ctx, userID)
	requests, _ := args.Get(0).([]model.FriendRequest)
	return requests, args.Error(1)
}

func (m *MockFriendRequestRepository) ListReceived(ctx context.Context, userID string) ([]model.FriendRequest, error) {
	args := m.Called(ctx, userID)
	requests, _ := args.Get(0).([]model.FriendRequest)
	return requests, args.Error(1)
}

func (m *MockFriendRequestRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFriendRequestRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// Mock: RefreshTokenRepository
// =====================

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindValid(ctx context.Context, token string, now time.Time) (*model.RefreshToken, error) {
	args := m.Called(ctx, token, now)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpiredOrRevoked(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: RoomRepository
// =====================

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *model.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*model.Room)
	return room, args.Error(1)
}

func (m *MockRoomRepository) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	args := m.Called(ctx, code)
	room, _ := args.Get(0).(*model.Room)
	return room, args.Error(1)
}

func (m *MockRoomRepository) AddPlayer(ctx context.Context, room *model.Room, player *model.User) error {
	args := m.Called(ctx, room, player)
	return args.Error(0)
}

func (m *MockRoomRepository) RemovePlayer(ctx context.Context, room *model.Room, player *model.User) error {
	args := m.Called(ctx, room, player)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Mock: DeckRepository
// =====================

type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) Create(ctx context.Context, deck *model.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) FindByID(ctx context.Context, id int64) (*model.Deck, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Deck)
	return d, args.Error(1)
}

func (m *MockDeckRepository) ListByUserID(ctx context.Context, userID string) ([]model.Deck, error) {
	args := m.Called(ctx, userID)
	decks, _ := args.Get(0).([]model.Deck)
	return decks, args.Error(1)
}

func (m *MockDeckRepository) Update(ctx context.Context, deck *model.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Mock: GameRepository
// =====================

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *model.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) FindByID(ctx context.Context, id int64) (*model.Game, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*model.Game)
	return g, args.Error(1)
}

func (m *MockGameRepository) ListByUserID(ctx context.Context, userID string) ([]model.Game, error) {
	args := m.Called(ctx, userID)
	games, _ := args.Get(0).([]model.Game)
	return games, args.Error(1)
}

func (m *MockGameRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameRepository) CreateParticipation(ctx context.Context, p *model.GameParticipation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockGameRepository) ListParticipations(ctx context.Context, gameID int64) ([]model.GameParticipation, error) {
	args := m.Called(ctx, gameID)
	participations, _ := args.Get(0).([]model.GameParticipation)
	return participations, args.Error(1)
}

func (m *MockGameRepository) DeleteParticipationsByGameID(ctx context.Context, gameID int64) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

func (m *MockGameRepository) CountGamesByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) CountWinsByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) SumSecondsByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) DeckStatsByUserID(ctx context.Context, userID string) ([]repo.DeckStatsRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]repo.DeckStatsRow)
	return rows, args.Error(1)
}

// =====================
// Stub: TransactionManager
// =====================

// テスト用。fnに同じmock一式をそのまま渡す
type stubTxRepos struct {
	users          repo.UserRepository
	friendRequests repo.FriendRequestRepository
	refreshTokens  repo.RefreshTokenRepository
	rooms          repo.RoomRepository
	games          repo.GameRepository
}

func (r *stubTxRepos) Users() repo.UserRepository                   { return r.users }
func (r *stubTxRepos) FriendRequests() repo.FriendRequestRepository { return r.friendRequests }
func (r *stubTxRepos) RefreshTokens() repo.RefreshTokenRepository   { return r.refreshTokens }
func (r *stubTxRepos) Rooms() repo.RoomRepository                   { return r.rooms }
func (r *stubTxRepos) Games() repo.GameRepository                   { return r.games }

type stubTxManager struct {
	repos *stubTxRepos
	err   error //commit時に返すエラー（競合の再現）
	calls int   //WithinTxが呼ばれた回数
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.calls++
	if err := fn(m.repos); err != nil {
		return err
	}
	return m.err
}
