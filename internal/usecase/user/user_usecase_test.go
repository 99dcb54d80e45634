package user

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/domain/mocks"
	"github.com/burgerspot/rewards/internal/infrastructure/auth"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

func newTestUseCase(repo domain.UserRepository) domain.UserUseCase {
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	return NewUserUseCase(repo, jwtSvc, logger.NewLogger("test", "debug"))
}

func TestAuthenticateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	uc := newTestUseCase(repo)

	repo.EXPECT().GetByUsername("alice").Return(&domain.User{
		ID:       2001,
		Username: "alice",
		Password: hashPassword("password123"),
		Role:     domain.RoleCustomer,
	}, nil)

	token, err := uc.Authenticate("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticateFailures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		user     *domain.User
	}{
		{"WrongPassword", "alice", "wrong", &domain.User{ID: 2001, Username: "alice", Password: hashPassword("password123")}},
		{"UnknownUser", "mallory", "password123", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepository(ctrl)
			uc := newTestUseCase(repo)
			repo.EXPECT().GetByUsername(tt.username).Return(tt.user, nil)

			token, err := uc.Authenticate(tt.username, tt.password)
			assert.Empty(t, token)

			var appErr *domain.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
			assert.Equal(t, 401, appErr.HTTPStatus)
		})
	}
}

func TestAuthenticateEmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(mocks.NewMockUserRepository(ctrl))

	token, err := uc.Authenticate("", "")
	assert.Empty(t, token)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
}

func TestGetUserInfoNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	uc := newTestUseCase(repo)

	repo.EXPECT().GetByID(int64(9999)).Return(nil, nil)

	user, err := uc.GetUserInfo(9999)
	assert.Nil(t, user)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
