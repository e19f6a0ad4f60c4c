package usecase_test

import (
	"context"
	"testing"

	"barkmart/internal/config"
	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"
	"barkmart/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mocks
// =====================

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AuthUserRepoMock) List(ctx context.Context, page int, limit int) ([]model.User, int64, error) {
	panic("not used in AuthUsecase tests")
}

func (m *AuthUserRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in AuthUsecase tests")
}

// 入力検証は別レイヤの責務なので素通しにする
type AuthValidatorMock struct{ mock.Mock }

func (m *AuthValidatorMock) ValidateRegister(ctx context.Context, email string, password string, name string) error {
	args := m.Called(ctx, email, password, name)
	return args.Error(0)
}

func (m *AuthValidatorMock) ValidateLogin(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func newAuthUsecaseWithMocks() (*usecase.AuthUsecase, *AuthUserRepoMock, *AuthValidatorMock) {
	users := new(AuthUserRepoMock)
	v := new(AuthValidatorMock)
	cfg := config.Config{JWTSecret: "test-secret"}
	return usecase.NewAuthUsecase(cfg, users, v), users, v
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

// =====================
// Register tests
// =====================

func TestAuthUsecase_Register_HashesPassword(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateRegister", mock.Anything, "a@b.com", "password123", "Alice").Return(nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//平文が保存されないこと
		if u.PasswordHash == "password123" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil &&
			u.Role == model.RoleUser &&
			u.IsActive
	})).Return(nil)

	out, err := uc.Register(context.Background(), usecase.AuthRegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Name:     "Alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "USER", out.Role)

	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_ValidatorRejects(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateRegister", mock.Anything, "bad", "short", "").Return(usecase.NewValidationError("invalid email"))

	_, err := uc.Register(context.Background(), usecase.AuthRegisterRequest{
		Email:    "bad",
		Password: "short",
	})

	var ve *usecase.ValidationError
	assert.ErrorAs(t, err, &ve)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// =====================
// Login tests
// =====================

func TestAuthUsecase_Login_Success_IssuesToken(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateLogin", mock.Anything, "a@b.com", "password123").Return(nil)
	users.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.User{
		ID:           42,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "password123"),
		Role:         model.RoleUser,
		IsActive:     true,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Email:    "a@b.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.User.ID)
	assert.NotEmpty(t, out.Token.AccessToken)

	//発行したトークンが自分のシークレットで検証できること
	token, err := jwt.Parse(out.Token.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "USER", claims["role"])
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateLogin", mock.Anything, "a@b.com", "wrongpass").Return(nil)
	users.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.User{
		ID:           42,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "password123"),
		IsActive:     true,
	}, nil)

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Email:    "a@b.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateLogin", mock.Anything, "nobody@b.com", "password123").Return(nil)
	users.On("FindByEmail", mock.Anything, "nobody@b.com").Return(nil, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Email:    "nobody@b.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_InactiveUser(t *testing.T) {
	uc, users, v := newAuthUsecaseWithMocks()

	v.On("ValidateLogin", mock.Anything, "a@b.com", "password123").Return(nil)
	users.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.User{
		ID:           42,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "password123"),
		IsActive:     false,
	}, nil)

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Email:    "a@b.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}
