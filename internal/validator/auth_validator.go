package validator

import (
	"context"
	"regexp"
	"strings"

	"barkmart/internal/repository"
	"barkmart/internal/usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string, name string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return usecase.NewValidationError("email, password and name are required")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewValidationError("invalid email")
	}

	// パスワード最低文字数（8）
	if len(password) < 8 {
		return usecase.NewValidationError("password must be at least 8 characters")
	}

	// email重複チェック（DBが必要）
	u, err := v.users.FindByEmail(ctx, email)
	if err == nil && u != nil {
		return usecase.NewValidationError("email already used")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewValidationError("email and password are required")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewValidationError("invalid email")
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
