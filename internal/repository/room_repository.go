package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id int64) (*model.Room, error)

	// Playersをpreloadして返す。無ければ nil, nil
	FindByCode(ctx context.Context, code string) (*model.Room, error)

	AddPlayer(ctx context.Context, room *model.Room, player *model.User) error
	RemovePlayer(ctx context.Context, room *model.Room, player *model.User) error
	DeleteByID(ctx context.Context, id int64) error
}
