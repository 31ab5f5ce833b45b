package validator

import (
	"context"
	"net/http"
	"net/mail"
	"regexp"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

var userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, userName string, email string, password string) error {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)

	// 必須チェック
	if userName == "" || email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "user name, email and password are required")
	}

	if !userNamePattern.MatchString(userName) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid user name")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	// パスワード最低文字数
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	// 重複チェック（DBが必要）
	existing, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		return usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if existing != nil {
		return usecase.NewHTTPError(http.StatusConflict, "email already taken")
	}

	existing, err = v.users.FindByUserName(ctx, userName)
	if err != nil {
		return usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if existing != nil {
		return usecase.NewHTTPError(http.StatusConflict, "user name already taken")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	return nil
}

func isEmailLike(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
