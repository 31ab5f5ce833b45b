package usecase

import (
	"context"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// アクセストークンは短命・ステートレス、リフレッシュは失効可能。
// 漏えい時の影響をアクセストークンのTTLで抑えつつ、
// ログアウト（全デバイス含む）はリフレッシュ側の失効で実現する。
type TokenUsecase struct {
	cfg           config.Config
	users         repo.UserRepository
	refreshTokens repo.RefreshTokenRepository
	tx            repo.TransactionManager
}

// DI
func NewTokenUsecase(
	cfg config.Config,
	users repo.UserRepository,
	refreshTokens repo.RefreshTokenRepository,
	tx repo.TransactionManager,
) *TokenUsecase {
	return &TokenUsecase{
		cfg:           cfg,
		users:         users,
		refreshTokens: refreshTokens,
		tx:            tx,
	}
}

// 署名付きアクセストークンを発行する。副作用なし
func (u *TokenUsecase) CreateAccessToken(user *model.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":            user.ID,
		"jti":            uuid.NewString(),
		"email":          user.Email,
		"email_verified": strconv.FormatBool(user.EmailConfirmed),
		"iat":            now.Unix(),
		"iss":            u.cfg.JWTIssuer,
		"aud":            u.cfg.JWTAudience,
		"exp":            now.Add(u.cfg.AccessTokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// リフレッシュトークンを発行して保存する。
// 同一トランザクションで、そのユーザーの期限切れ・失効済みトークンを掃除する
func (u *TokenUsecase) CreateRefreshToken(ctx context.Context, user *model.User) (*model.RefreshToken, error) {
	now := time.Now()

	rt := &model.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.RefreshTokenTTL),
		IsRevoked: false,
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.RefreshTokens().Create(ctx, rt); err != nil {
			return err
		}
		return r.RefreshTokens().DeleteExpiredOrRevoked(ctx, user.ID, now)
	})
	if err != nil {
		return nil, err
	}

	return rt, nil
}

// トークン文字列から所有ユーザーを引く。状態は変えない。
// 不一致・失効・期限切れ・ユーザー不在はすべて nil, nil
func (u *TokenUsecase) ValidateRefreshToken(ctx context.Context, token string) (*model.User, error) {
	rt, err := u.refreshTokens.FindValid(ctx, token, time.Now())
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, nil
	}

	user, err := u.users.FindByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return user, nil
}

// トークンを失効させ、成功は1回だけにする。
// 不在・失効済みは ErrRefreshTokenNotFound をそのまま返す。
// ローテーション時、同じトークンを同時に持ち込んだ側の片方だけが勝つ
func (u *TokenUsecase) ConsumeRefreshToken(ctx context.Context, token string) error {
	return u.refreshTokens.Revoke(ctx, token)
}

// トークンを失効させる。不在なら何もしない（エラーではない）
func (u *TokenUsecase) InvalidateRefreshToken(ctx context.Context, token string) error {
	err := u.refreshTokens.Revoke(ctx, token)
	if err != nil {
		if err == repo.ErrRefreshTokenNotFound {
			return nil
		}
		return err
	}
	return nil
}
