package usecase

import (
	"context"
	"crypto/rand"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 紛らわしい文字（0/O, 1/I）を除いた合流コード用アルファベット
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const roomCodeLength = 6

type RoomUsecase struct {
	rooms repo.RoomRepository
	users repo.UserRepository
	tx    repo.TransactionManager
}

// DI
func NewRoomUsecase(rooms repo.RoomRepository, users repo.UserRepository, tx repo.TransactionManager) *RoomUsecase {
	return &RoomUsecase{rooms: rooms, users: users, tx: tx}
}

type RoomDTO struct {
	ID          int64     `json:"id"`
	RoomOwnerID string    `json:"roomOwnerId"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"createdAt"`

	// ルーム内の全プレイヤー
	Players []UserDTO `json:"players"`
}

func toRoomDTO(room *model.Room) RoomDTO {
	players := make([]UserDTO, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, toUserDTO(p))
	}
	return RoomDTO{
		ID:          room.ID,
		RoomOwnerID: room.RoomOwnerID,
		Code:        room.Code,
		CreatedAt:   room.CreatedAt,
		Players:     players,
	}
}

// ルーム作成。作成者は最初のプレイヤーとして入室済みになる
func (u *RoomUsecase) Create(ctx context.Context, callerID string) (*RoomDTO, error) {
	owner, err := u.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if owner == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//ルーム行とオーナーの入室を1トランザクションで書く。
	//入室に失敗したルームは残さない（コード衝突時はunique制約に弾かれるので作り直す）
	var room *model.Room
	for attempt := 0; attempt < 5; attempt++ {
		code, err := newRoomCode()
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		candidate := &model.Room{
			RoomOwnerID: callerID,
			Code:        code,
		}

		err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			if err := r.Rooms().Create(ctx, candidate); err != nil {
				return err
			}
			return r.Rooms().AddPlayer(ctx, candidate, owner)
		})
		if err == nil {
			room = candidate
			break
		}
	}
	if room == nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not create room")
	}

	room.Players = append(room.Players, owner)

	dto := toRoomDTO(room)
	return &dto, nil
}

func (u *RoomUsecase) GetByCode(ctx context.Context, code string) (*RoomDTO, error) {
	room, err := u.rooms.FindByCode(ctx, code)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if room == nil {
		return nil, NewHTTPError(http.StatusNotFound, "room not found")
	}

	dto := toRoomDTO(room)
	return &dto, nil
}

// 合流コードで入室。入室済みならそのまま返す
func (u *RoomUsecase) Join(ctx context.Context, code string, callerID string) (*RoomDTO, error) {
	room, err := u.rooms.FindByCode(ctx, code)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if room == nil {
		return nil, NewHTTPError(http.StatusNotFound, "room not found")
	}

	caller, err := u.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if caller == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	for _, p := range room.Players {
		if p.ID == callerID {
			dto := toRoomDTO(room)
			return &dto, nil
		}
	}

	if err := u.rooms.AddPlayer(ctx, room, caller); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not join room")
	}
	room.Players = append(room.Players, caller)

	dto := toRoomDTO(room)
	return &dto, nil
}

// 退室。入室していなければ404
func (u *RoomUsecase) Leave(ctx context.Context, code string, callerID string) error {
	room, err := u.rooms.FindByCode(ctx, code)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if room == nil {
		return NewHTTPError(http.StatusNotFound, "room not found")
	}

	var member *model.User
	for _, p := range room.Players {
		if p.ID == callerID {
			member = p
			break
		}
	}
	if member == nil {
		return NewHTTPError(http.StatusNotFound, "not in room")
	}

	if err := u.rooms.RemovePlayer(ctx, room, member); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "could not leave room")
	}

	return nil
}

// ルーム削除はオーナーのみ。他人のルームは存在しない扱い
func (u *RoomUsecase) Delete(ctx context.Context, callerID string, roomID int64) error {
	room, err := u.rooms.FindByID(ctx, roomID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if room == nil || room.RoomOwnerID != callerID {
		return NewHTTPError(http.StatusNotFound, "room not found")
	}

	if err := u.rooms.DeleteByID(ctx, room.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "could not delete room")
	}

	return nil
}

// crypto/randで合流コードを作る
func newRoomCode() (string, error) {
	buf := make([]byte, roomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}

	return string(buf), nil
}
