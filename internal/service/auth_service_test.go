package service

import (
	"testing"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"
	"prompthub-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	info, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "user", info.UserRole)

	// 密码以 bcrypt 散列入库
	var stored model.User
	require.NoError(t, db.First(&stored, info.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.VerifyPassword("secret123", stored.Password))

	// 重复邮箱与重复用户名分别被拒绝
	_, err = svc.Register(&dto.RegisterRequest{
		Username: "other",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthServiceGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	alice := seedUser(t, db, "alice")

	info, err := svc.GetCurrentUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, info.ID)

	_, err = svc.GetCurrentUser(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
