package service

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), &dto.RegisterDTO{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)

	// 密码只存哈希
	stored, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, security.CheckPasswordHash("secret123", stored.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterDTO{Email: "alice@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrUserExist)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	claims, err := security.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrMissingLoginCredentials)
}
