package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
	"time"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// リフレッシュトークンの保存・検証・失効
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error

	// 未失効かつ期限内のトークンを完全一致で1件。無ければ nil, nil
	FindValid(ctx context.Context, token string, now time.Time) (*model.RefreshToken, error)

	// is_revoked を立てる。同一トークンで成功するのは1回だけ。
	// 不在・失効済みは ErrRefreshTokenNotFound
	Revoke(ctx context.Context, token string) error

	// 期限切れまたは失効済みのトークンをユーザー単位で物理削除
	DeleteExpiredOrRevoked(ctx context.Context, userID string, now time.Time) error

	CountByUserID(ctx context.Context, userID string) (int64, error)
}
