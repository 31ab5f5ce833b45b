package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type refreshTokenGormRepository struct {
	db *gorm.DB //DB接続（GORM）
}

// GORM実装
func NewRefreshTokenGormRepository(db *gorm.DB) domainrepo.RefreshTokenRepository {
	return &refreshTokenGormRepository{db: db}
}

// リフレッシュトークンを保存
func (r *refreshTokenGormRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return err
	}
	return nil
}

// 完全一致・未失効・期限内で1件検索。無ければ nil, nil
func (r *refreshTokenGormRepository) FindValid(ctx context.Context, token string, now time.Time) (*model.RefreshToken, error) {
	var rt model.RefreshToken

	err := r.db.WithContext(ctx).
		Where("token = ? AND is_revoked = ? AND expires_at > ?", token, false, now).
		First(&rt).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &rt, nil
}

// is_revokedを立てて無効化。同じトークンで成功するのは1回だけ。
// 不在・失効済みは ErrRefreshTokenNotFound
func (r *refreshTokenGormRepository) Revoke(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("token = ? AND is_revoked = ?", token, false).
		Update("is_revoked", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrRefreshTokenNotFound
	}

	return nil
}

// 期限切れ・失効済みをユーザー単位で物理削除
func (r *refreshTokenGormRepository) DeleteExpiredOrRevoked(ctx context.Context, userID string, now time.Time) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (expires_at < ? OR is_revoked = ?)", userID, now, true).
		Delete(&model.RefreshToken{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *refreshTokenGormRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}
