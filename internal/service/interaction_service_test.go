package service

import (
	"testing"
	"time"

	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInteractionServiceToggleInvolution(t *testing.T) {
	db := newTestDB(t)
	promptRepo := repository.NewPromptRepository(db)
	svc := NewInteractionService(repository.NewInteractionRepository(db), promptRepo)

	alice := seedUser(t, db, "alice")
	prompt := seedPrompt(t, db, alice.ID, "target", true, time.Now())

	for _, rel := range []model.Relation{model.RelationLike, model.RelationFavorite} {
		// 第一次切换：建立关系
		data, err := svc.Toggle(rel, alice.ID, prompt.ID)
		require.NoError(t, err)
		assert.True(t, data.Active)
		assert.Equal(t, int64(1), data.Total)

		// 第二次切换：撤销，回到初始状态
		data, err = svc.Toggle(rel, alice.ID, prompt.ID)
		require.NoError(t, err)
		assert.False(t, data.Active)
		assert.Equal(t, int64(0), data.Total)
	}

	// 计数列随切换回落到 0
	stored, err := promptRepo.GetByID(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.LikesCount)
	assert.Equal(t, int64(0), stored.FavoritesCount)
}

func TestInteractionServiceToggleMirrorsCounter(t *testing.T) {
	db := newTestDB(t)
	promptRepo := repository.NewPromptRepository(db)
	svc := NewInteractionService(repository.NewInteractionRepository(db), promptRepo)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	prompt := seedPrompt(t, db, alice.ID, "target", true, time.Now())

	_, err := svc.Toggle(model.RelationLike, alice.ID, prompt.ID)
	require.NoError(t, err)
	data, err := svc.Toggle(model.RelationLike, bob.ID, prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)

	stored, err := promptRepo.GetByID(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.LikesCount)
	assert.Equal(t, int64(0), stored.FavoritesCount)
}

// 两个请求同时发现记录不存在时，后插入的一方收到冲突而不是裸的存储错误
func TestInteractionServiceToggleDuplicateRace(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db), repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	prompt := seedPrompt(t, db, alice.ID, "target", true, time.Now())

	// 在点赞插入执行前抢先写入同一条记录，复现并发竞争
	armed := true
	err := db.Callback().Create().Before("gorm:create").Register("race_like", func(tx *gorm.DB) {
		if !armed {
			return
		}
		if _, ok := tx.Statement.Dest.(*model.Like); !ok {
			return
		}
		armed = false
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).
			Create(&model.Like{UserID: alice.ID, PromptID: prompt.ID}).Error)
	})
	require.NoError(t, err)

	_, err = svc.Toggle(model.RelationLike, alice.ID, prompt.ID)
	assert.ErrorIs(t, err, ErrInteractionConflict)
}

// 匿名调用在访问存储之前被拒绝
func TestInteractionServiceToggleRequiresUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db), repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	prompt := seedPrompt(t, db, alice.ID, "target", true, time.Now())

	_, err := svc.Toggle(model.RelationLike, 0, prompt.ID)
	assert.ErrorIs(t, err, ErrAuthRequired)

	var count int64
	require.NoError(t, db.Model(&model.Like{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestInteractionServiceToggleValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db), repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")

	_, err := svc.Toggle(model.Relation("bookmark"), alice.ID, 1)
	assert.ErrorIs(t, err, ErrUnknownRelation)

	_, err = svc.Toggle(model.RelationLike, alice.ID, 99999)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestInteractionServiceStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db), repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	prompt := seedPrompt(t, db, alice.ID, "target", true, time.Now())

	_, err := svc.Toggle(model.RelationFavorite, bob.ID, prompt.ID)
	require.NoError(t, err)

	status, err := svc.GetStatus(model.RelationFavorite, bob.ID, prompt.ID)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, int64(1), status.Total)

	status, err = svc.GetStatus(model.RelationFavorite, alice.ID, prompt.ID)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Equal(t, int64(1), status.Total)
}

func TestInteractionServiceBatchStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(repository.NewInteractionRepository(db), repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	first := seedPrompt(t, db, alice.ID, "first", true, time.Now())
	second := seedPrompt(t, db, alice.ID, "second", true, time.Now())

	_, err := svc.Toggle(model.RelationLike, bob.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(model.RelationFavorite, bob.ID, second.ID)
	require.NoError(t, err)

	data, err := svc.BatchStatus(bob.ID, []int64{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{first.ID: true, second.ID: false}, data.Likes)
	assert.Equal(t, map[int64]bool{first.ID: false, second.ID: true}, data.Favorites)
}
