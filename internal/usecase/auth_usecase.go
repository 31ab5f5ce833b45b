package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, userName string, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenDTO struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type AuthResponse struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}

// handlerがCookieに詰めるために必要な値
type AuthResult struct {
	Body              AuthResponse
	RefreshTokenPlain string
}

type AuthUsecase struct {
	users     repo.UserRepository
	tokens    *TokenUsecase
	validator AuthValidator
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	tokens *TokenUsecase,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// 会員登録。成功時はログイン済み状態（トークン一式）で返す
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.UserName, in.Email, in.Password); err != nil {
		return nil, err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		ID:             uuid.NewString(),
		UserName:       in.UserName,
		Email:          in.Email,
		PasswordHash:   string(pwHash),
		EmailConfirmed: false,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// unique制約violation（validatorとのレース）はここに落ちる
		return nil, NewHTTPError(http.StatusConflict, "email or user name already taken")
	}

	return u.issueTokens(ctx, user)
}

// ログイン
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return u.issueTokens(ctx, user)
}

// リフレッシュトークンを新しいペアに交換する（ローテーション）
func (u *AuthUsecase) Refresh(ctx context.Context, refreshTokenPlain string) (*AuthResult, error) {
	if refreshTokenPlain == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.tokens.ValidateRefreshToken(ctx, refreshTokenPlain)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//旧トークンを失効させてから新ペアを発行する。
	//失効は1回しか成功しないので、同じトークンによる同時リフレッシュは片方だけ通る。
	//失効済みの旧トークンは次の発行時に遅延削除される
	if err := u.tokens.ConsumeRefreshToken(ctx, refreshTokenPlain); err != nil {
		if err == repo.ErrRefreshTokenNotFound {
			return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return u.issueTokens(ctx, user)
}

// 提示されたリフレッシュトークンを失効させる。不在でも成功扱い
func (u *AuthUsecase) Logout(ctx context.Context, refreshTokenPlain string) error {
	if refreshTokenPlain == "" {
		return nil
	}

	if err := u.tokens.InvalidateRefreshToken(ctx, refreshTokenPlain); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}

// 認証済みユーザー自身のサマリ
func (u *AuthUsecase) Me(ctx context.Context, userID string) (*UserDTO, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// アクセス+リフレッシュのペアを発行する
func (u *AuthUsecase) issueTokens(ctx context.Context, user *model.User) (*AuthResult, error) {
	accessToken, err := u.tokens.CreateAccessToken(user)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	rt, err := u.tokens.CreateRefreshToken(ctx, user)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &AuthResult{
		Body: AuthResponse{
			User: toUserDTO(user),
			Token: TokenDTO{
				AccessToken: accessToken,
				ExpiresIn:   int(u.tokens.cfg.AccessTokenTTL / time.Second),
			},
		},
		RefreshTokenPlain: rt.Token,
	}, nil
}
