package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type GameUsecase struct {
	games repo.GameRepository
	rooms repo.RoomRepository
	users repo.UserRepository
	decks repo.DeckRepository
	tx    repo.TransactionManager
}

// DI
func NewGameUsecase(
	games repo.GameRepository,
	rooms repo.RoomRepository,
	users repo.UserRepository,
	decks repo.DeckRepository,
	tx repo.TransactionManager,
) *GameUsecase {
	return &GameUsecase{
		games: games,
		rooms: rooms,
		users: users,
		decks: decks,
		tx:    tx,
	}
}

type GameWriteInput struct {
	RoomID     int64
	NumPlayers int
	NumTurns   int
	Seconds    int
	WinnerID   string
	CreatedAt  time.Time //ゲーム開始時刻。ゼロ値なら現在時刻
}

type ParticipationWriteInput struct {
	GameID int64
	UserID string
	DeckID *int64
}

// ゲーム結果の保存
func (u *GameUsecase) Create(ctx context.Context, callerID string, in GameWriteInput) (*model.Game, error) {
	if in.NumPlayers < 1 || in.NumPlayers > 6 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid number of players")
	}
	if in.NumTurns < 0 || in.Seconds < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid game data")
	}
	if in.WinnerID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "winner is required")
	}

	room, err := u.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if room == nil {
		return nil, NewHTTPError(http.StatusNotFound, "room not found")
	}

	winner, err := u.users.FindByID(ctx, in.WinnerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if winner == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "winner not found")
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	game := &model.Game{
		RoomID:          in.RoomID,
		NumPlayers:      in.NumPlayers,
		NumTurns:        in.NumTurns,
		Seconds:         in.Seconds,
		CreatedByUserID: callerID,
		WinnerID:        in.WinnerID,
		CreatedAt:       createdAt,
	}

	if err := u.games.Create(ctx, game); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not save game")
	}

	return game, nil
}

// 参加記録の追加。ゲーム作成者のみ。
// Wonはクライアントに任せずWinnerIDから導出する
func (u *GameUsecase) CreateParticipation(ctx context.Context, callerID string, in ParticipationWriteInput) (*model.GameParticipation, error) {
	game, err := u.games.FindByID(ctx, in.GameID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if game == nil {
		return nil, NewHTTPError(http.StatusNotFound, "game not found")
	}
	if game.CreatedByUserID != callerID {
		return nil, NewHTTPError(http.StatusForbidden, "only the game creator can add participations")
	}

	player, err := u.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if player == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "player not found")
	}

	//デッキ指定は任意だが、指定するならそのプレイヤーのデッキであること
	if in.DeckID != nil {
		deck, err := u.decks.FindByID(ctx, *in.DeckID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		if deck == nil || deck.UserID != in.UserID {
			return nil, NewHTTPError(http.StatusBadRequest, "deck does not belong to player")
		}
	}

	p := &model.GameParticipation{
		GameID: in.GameID,
		UserID: in.UserID,
		DeckID: in.DeckID,
		Won:    in.UserID == game.WinnerID,
	}

	if err := u.games.CreateParticipation(ctx, p); err != nil {
		//同一ゲームへの二重登録はunique制約で弾かれる
		return nil, NewHTTPError(http.StatusInternalServerError, "could not save participation")
	}

	return p, nil
}

// 自分が参加・作成したゲーム一覧
func (u *GameUsecase) List(ctx context.Context, callerID string) ([]model.Game, error) {
	games, err := u.games.ListByUserID(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return games, nil
}

// ゲーム削除は作成者のみ。参加記録ごと1トランザクションで消す
func (u *GameUsecase) Delete(ctx context.Context, callerID string, gameID int64) error {
	game, err := u.games.FindByID(ctx, gameID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if game == nil || game.CreatedByUserID != callerID {
		return NewHTTPError(http.StatusNotFound, "game not found")
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Games().DeleteParticipationsByGameID(ctx, game.ID); err != nil {
			return err
		}
		return r.Games().DeleteByID(ctx, game.ID)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "could not delete game")
	}

	return nil
}
