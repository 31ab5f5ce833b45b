package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users          repo.UserRepository
	friendRequests repo.FriendRequestRepository
	refreshTokens  repo.RefreshTokenRepository
	rooms          repo.RoomRepository
	games          repo.GameRepository
}

func (r *txReposGorm) Users() repo.UserRepository                   { return r.users }
func (r *txReposGorm) FriendRequests() repo.FriendRequestRepository { return r.friendRequests }
func (r *txReposGorm) RefreshTokens() repo.RefreshTokenRepository   { return r.refreshTokens }
func (r *txReposGorm) Rooms() repo.RoomRepository                   { return r.rooms }
func (r *txReposGorm) Games() repo.GameRepository                   { return r.games }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:          NewUserGormRepository(tx),
			friendRequests: NewFriendRequestGormRepository(tx),
			refreshTokens:  NewRefreshTokenGormRepository(tx),
			rooms:          NewRoomGormRepository(tx),
			games:          NewGameGormRepository(tx),
		}
		return fn(r)
	})
}
