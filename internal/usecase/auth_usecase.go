package usecase

import (
	"context"
	"errors"
	"time"

	"barkmart/internal/config"
	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 24 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string, name string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository, validator AuthValidator) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, req AuthRegisterRequest) (UserDTO, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, req.Email, req.Password, req.Name); err != nil {
		return UserDTO{}, err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, newPersistenceError(err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(pwHash),
		Name:         req.Name,
		Role:         model.RoleUser,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		//email unique制約との競合はここに落ちる
		return UserDTO{}, NewValidationError("email already used")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, req AuthLoginRequest) (AuthLoginResponse, error) {
	if err := u.validator.ValidateLogin(ctx, req.Email, req.Password); err != nil {
		return AuthLoginResponse{}, err
	}

	user, err := u.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repo.ErrNotFound) || user == nil {
		return AuthLoginResponse{}, ErrUnauthorized
	}
	if err != nil {
		return AuthLoginResponse{}, newPersistenceError(err)
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return AuthLoginResponse{}, ErrUnauthorized
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return AuthLoginResponse{}, ErrUnauthorized
	}

	//last_login更新。失敗してもログイン自体は通す
	now := time.Now()
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	token, err := u.issueAccessToken(user, now)
	if err != nil {
		return AuthLoginResponse{}, newPersistenceError(err)
	}

	return AuthLoginResponse{
		User: toUserDTO(user),
		Token: TokenDTO{
			AccessToken: token,
			ExpiresIn:   int(accessTokenTTL.Seconds()),
		},
	}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, ErrUnauthorized
	}
	if err != nil {
		return UserDTO{}, newPersistenceError(err)
	}

	return toUserDTO(user), nil
}

// HS256のアクセストークンを発行
func (u *AuthUsecase) issueAccessToken(user *model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
