package auth_test

import (
	"testing"
	"time"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *auth.Config {
	return &auth.Config{
		JWTSecret:   "test-signing-key",
		TokenExpiry: time.Hour,
		Issuer:      "taskboard-backend",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := testConfig()

		err := config.Validate()
		assert.NoError(t, err)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &auth.Config{TokenExpiry: time.Hour}

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive token expiry", func(t *testing.T) {
		config := &auth.Config{JWTSecret: "test-signing-key"}

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token expiry must be positive")
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates account and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockUserRepositoryInterface(ctrl)

		service, err := auth.NewAuthService(testConfig(), store)
		require.NoError(t, err)

		store.EXPECT().
			GetByEmail("new.user@test.com").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		store.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(user *models.User) error {
				assert.Equal(t, "new.user@test.com", user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
				user.ID = uuid.New()
				return nil
			}).
			Times(1)

		resp, err := service.Register(&auth.RegisterRequest{
			Email:    "  New.User@Test.com ",
			Password: "supersecret",
			FullName: "New User",
		})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.NotEmpty(t, resp.AccessToken)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "new.user@test.com", claims.Email)
		assert.Equal(t, resp.User.ID, claims.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockUserRepositoryInterface(ctrl)

		service, err := auth.NewAuthService(testConfig(), store)
		require.NoError(t, err)

		store.EXPECT().
			GetByEmail("taken@test.com").
			Return(&models.User{Email: "taken@test.com"}, nil).
			Times(1)

		resp, err := service.Register(&auth.RegisterRequest{
			Email:    "taken@test.com",
			Password: "supersecret",
			FullName: "New User",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        "user@test.com",
		PasswordHash: string(hash),
		FullName:     "Known User",
	}
	user.ID = uuid.New()

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockUserRepositoryInterface(ctrl)

		service, err := auth.NewAuthService(testConfig(), store)
		require.NoError(t, err)

		store.EXPECT().
			GetByEmail("user@test.com").
			Return(user, nil).
			Times(1)

		resp, err := service.Login(&auth.LoginRequest{Email: "user@test.com", Password: "supersecret"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockUserRepositoryInterface(ctrl)

		service, err := auth.NewAuthService(testConfig(), store)
		require.NoError(t, err)

		store.EXPECT().
			GetByEmail("user@test.com").
			Return(user, nil).
			Times(1)

		resp, err := service.Login(&auth.LoginRequest{Email: "user@test.com", Password: "not-the-password"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email matches wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockUserRepositoryInterface(ctrl)

		service, err := auth.NewAuthService(testConfig(), store)
		require.NoError(t, err)

		store.EXPECT().
			GetByEmail("nobody@test.com").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		resp, err := service.Login(&auth.LoginRequest{Email: "nobody@test.com", Password: "supersecret"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockUserRepositoryInterface(ctrl)

	service, err := auth.NewAuthService(testConfig(), store)
	require.NoError(t, err)

	user := &models.User{Email: "user@test.com", FullName: "Known User"}
	user.ID = uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "taskboard-backend", claims.Issuer)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "some-other-key"
		other, err := auth.NewAuthService(otherCfg, store)
		require.NoError(t, err)

		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		claims, err := service.ValidateJWT("not.a.token")
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
