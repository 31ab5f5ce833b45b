package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var (
	ErrGameNotFound          = errors.New("game not found")
	ErrParticipationNotFound = errors.New("game participation not found")
)

// 統計用のデッキ別集計行
type DeckStatsRow struct {
	DeckID    int64
	Name      string
	Commander string
	Games     int64
	Wins      int64
}

type GameRepository interface {
	Create(ctx context.Context, game *model.Game) error
	FindByID(ctx context.Context, id int64) (*model.Game, error)

	// 参加または作成したゲームを新しい順で
	ListByUserID(ctx context.Context, userID string) ([]model.Game, error)

	DeleteByID(ctx context.Context, id int64) error

	CreateParticipation(ctx context.Context, p *model.GameParticipation) error
	ListParticipations(ctx context.Context, gameID int64) ([]model.GameParticipation, error)
	DeleteParticipationsByGameID(ctx context.Context, gameID int64) error

	// 集計（statsエンドポイント用）
	CountGamesByUserID(ctx context.Context, userID string) (int64, error)
	CountWinsByUserID(ctx context.Context, userID string) (int64, error)
	SumSecondsByUserID(ctx context.Context, userID string) (int64, error)
	DeckStatsByUserID(ctx context.Context, userID string) ([]DeckStatsRow, error)
}
