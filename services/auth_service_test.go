package services_test

import (
	"testing"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	username := "jsmith"
	user, err := services.Register(dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "s3cret123",
		Username: &username,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := services.Register(dto.RegisterRequest{
			Email:    "jane@example.com",
			Password: "other",
		})
		assert.ErrorContains(t, err, "email already registered")
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := services.Register(dto.RegisterRequest{
			Email:    "other@example.com",
			Password: "other",
			Username: &username,
		})
		assert.ErrorContains(t, err, "username already taken")
	})

	t.Run("login returns a valid token", func(t *testing.T) {
		response, err := services.Login(dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "s3cret123",
		})
		require.NoError(t, err)
		assert.Empty(t, response.User.Password)

		claims, err := services.ValidateToken(response.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := services.Login(dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.ErrorContains(t, err, "invalid email or password")
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		response, err := services.Login(dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "s3cret123",
		})
		require.NoError(t, err)

		_, err = services.ValidateToken(response.Token + "x")
		assert.Error(t, err)
	})
}

func TestUserService(t *testing.T) {
	setupTestDB(t)
	svc := services.NewUserService()

	username := "jsmith"
	user, err := services.Register(dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "s3cret123",
		Username: &username,
	})
	require.NoError(t, err)

	t.Run("listing strips passwords", func(t *testing.T) {
		users, err := svc.ListUsers()
		require.NoError(t, err)
		require.NotEmpty(t, users)
		for _, u := range users {
			assert.Empty(t, u.Password)
		}
	})

	t.Run("role update validates the role", func(t *testing.T) {
		role := "admin"
		updated, err := svc.UpdateUser(user.ID, dto.UpdateUserRequest{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, "admin", string(updated.Role))

		bad := "superuser"
		_, err = svc.UpdateUser(user.ID, dto.UpdateUserRequest{Role: &bad})
		assert.ErrorContains(t, err, "invalid role")
	})

	t.Run("password reset replaces the hash", func(t *testing.T) {
		require.NoError(t, svc.ResetPassword(user.ID, "newpass456"))

		t.Setenv("JWT_SECRET", "test-secret")
		_, err := services.Login(dto.LoginRequest{Email: "jane@example.com", Password: "s3cret123"})
		assert.Error(t, err)

		_, err = services.Login(dto.LoginRequest{Email: "jane@example.com", Password: "newpass456"})
		assert.NoError(t, err)
	})
}
