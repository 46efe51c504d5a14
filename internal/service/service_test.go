package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"prompthub-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A plain ":memory:" DSN gives each pooled connection its own empty
	// database; shared cache keeps every connection on the same one.
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Prompt{},
		&model.Like{},
		&model.Favorite{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		UserName: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPrompt(t *testing.T, db *gorm.DB, userID int64, title string, isPublic bool, createdAt time.Time) *model.Prompt {
	t.Helper()
	prompt := &model.Prompt{
		UserID:    userID,
		Title:     title,
		Content:   "content of " + title,
		IsPublic:  isPublic,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(prompt).Error)
	return prompt
}

func seedFavorite(t *testing.T, db *gorm.DB, userID, promptID int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Favorite{UserID: userID, PromptID: promptID}).Error)
}
