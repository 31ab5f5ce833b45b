package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type gameGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewGameGormRepository(db *gorm.DB) domainrepo.GameRepository {
	return &gameGormRepository{db: db}
}

func (r *gameGormRepository) Create(ctx context.Context, game *model.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return err
	}
	return nil
}

func (r *gameGormRepository) FindByID(ctx context.Context, id int64) (*model.Game, error) {
	var g model.Game

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&g).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &g, nil
}

// 参加または作成したゲームを新しい順で
func (r *gameGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Game, error) {
	var games []model.Game

	participated := r.db.
		Model(&model.GameParticipation{}).
		Select("game_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Where("created_by_user_id = ? OR id IN (?)", userID, participated).
		Order("created_at DESC").
		Find(&games).Error

	if err != nil {
		return nil, err
	}

	return games, nil
}

func (r *gameGormRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Game{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrGameNotFound
	}

	return nil
}

func (r *gameGormRepository) CreateParticipation(ctx context.Context, p *model.GameParticipation) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	return nil
}

func (r *gameGormRepository) ListParticipations(ctx context.Context, gameID int64) ([]model.GameParticipation, error) {
	var participations []model.GameParticipation

	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Find(&participations).Error

	if err != nil {
		return nil, err
	}

	return participations, nil
}

func (r *gameGormRepository) DeleteParticipationsByGameID(ctx context.Context, gameID int64) error {
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Delete(&model.GameParticipation{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *gameGormRepository) CountGamesByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.GameParticipation{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *gameGormRepository) CountWinsByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.GameParticipation{}).
		Where("user_id = ? AND won = ?", userID, true).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// 参加したゲームの合計プレイ時間（秒）
func (r *gameGormRepository) SumSecondsByUserID(ctx context.Context, userID string) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Table("games").
		Joins("JOIN game_participations gp ON gp.game_id = games.id").
		Where("gp.user_id = ?", userID).
		Select("COALESCE(SUM(games.seconds), 0)").
		Scan(&total).Error

	if err != nil {
		return 0, err
	}

	return total, nil
}

// デッキ別の試合数・勝利数
func (r *gameGormRepository) DeckStatsByUserID(ctx context.Context, userID string) ([]domainrepo.DeckStatsRow, error) {
	var rows []domainrepo.DeckStatsRow

	err := r.db.WithContext(ctx).
		Table("game_participations gp").
		Joins("JOIN decks d ON d.id = gp.deck_id").
		Where("gp.user_id = ?", userID).
		Select("d.id AS deck_id, d.name AS name, d.commander AS commander, COUNT(gp.id) AS games, COUNT(gp.id) FILTER (WHERE gp.won) AS wins").
		Group("d.id, d.name, d.commander").
		Order("games DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
