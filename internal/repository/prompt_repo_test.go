package repository

import (
	"strings"
	"testing"
	"time"

	"prompthub-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPrompt(t *testing.T, db *gorm.DB, userID int64, title string, categoryID *int64, isPublic bool, createdAt time.Time) *model.Prompt {
	t.Helper()
	prompt := &model.Prompt{
		UserID:     userID,
		Title:      title,
		Content:    "content of " + title,
		CategoryID: categoryID,
		IsPublic:   isPublic,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(prompt).Error)
	return prompt
}

// 私有标记是零值 false，插入后重新读取确认它真的写进了行里
func TestPromptRepositoryPrivateFlagPersisted(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	alice := seedUser(t, db, "alice")
	private := seedPrompt(t, db, alice.ID, "draft", nil, false, time.Now())

	stored, err := repo.GetByID(private.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPublic)

	// 私有行不进入公开列表
	prompts, err := repo.List(ListPromptOptions{})
	require.NoError(t, err)
	assert.Empty(t, prompts)
}

func TestPromptRepositoryListVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seedPrompt(t, db, alice.ID, "alice public", nil, true, base)
	alicePrivate := seedPrompt(t, db, alice.ID, "alice private", nil, false, base.Add(time.Minute))
	seedPrompt(t, db, bob.ID, "bob public", nil, true, base.Add(2*time.Minute))

	// 无 UserID 时只返回公开内容
	prompts, err := repo.List(ListPromptOptions{})
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	for _, p := range prompts {
		assert.True(t, p.IsPublic)
	}

	// 作者过滤覆盖可见性过滤：作者能看到自己的私有提示词
	prompts, err = repo.List(ListPromptOptions{UserID: &alice.ID})
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	titles := []string{prompts[0].Title, prompts[1].Title}
	assert.Contains(t, titles, "alice private")
	assert.NotContains(t, titles, "bob public")

	// 作者过滤只限定作者，不放开别人的私有内容
	prompts, err = repo.List(ListPromptOptions{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.NotEqual(t, alicePrivate.ID, prompts[0].ID)
}

func TestPromptRepositoryListCategoryAndLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	alice := seedUser(t, db, "alice")
	writing := seedCategory(t, db, "写作", "writing")
	coding := seedCategory(t, db, "编程", "coding")

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seedPrompt(t, db, alice.ID, "writing one", &writing.ID, true, base)
	seedPrompt(t, db, alice.ID, "writing two", &writing.ID, true, base.Add(time.Minute))
	seedPrompt(t, db, alice.ID, "coding one", &coding.ID, true, base.Add(2*time.Minute))
	seedPrompt(t, db, alice.ID, "no category", nil, true, base.Add(3*time.Minute))

	// 分类过滤是精确匹配，未分类的不混进来
	prompts, err := repo.List(ListPromptOptions{CategoryID: &writing.ID})
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	for _, p := range prompts {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, writing.ID, *p.CategoryID)
	}

	// 按创建时间倒序
	prompts, err = repo.List(ListPromptOptions{})
	require.NoError(t, err)
	require.Len(t, prompts, 4)
	for i := 1; i < len(prompts); i++ {
		assert.False(t, prompts[i].CreatedAt.After(prompts[i-1].CreatedAt))
	}

	// 条数上限在排序之后截断
	prompts, err = repo.List(ListPromptOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "no category", prompts[0].Title)
	assert.Equal(t, "coding one", prompts[1].Title)
}

func TestPromptRepositoryListBlankSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	alice := seedUser(t, db, "alice")
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seedPrompt(t, db, alice.ID, "one", nil, true, base)
	seedPrompt(t, db, alice.ID, "two", nil, true, base.Add(time.Minute))

	// 全空白的搜索词不追加搜索条件
	prompts, err := repo.List(ListPromptOptions{Search: "   "})
	require.NoError(t, err)
	assert.Len(t, prompts, 2)
}

// 搜索子句是 PostgreSQL 的 ILIKE，sqlite 执行不了，这里只校验生成的 SQL
func TestPromptRepositoryListSearchClause(t *testing.T) {
	db := newTestDB(t)

	var captured struct {
		sql  string
		vars []interface{}
	}
	err := db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	repo := NewPromptRepository(db.Session(&gorm.Session{DryRun: true}))

	_, err = repo.List(ListPromptOptions{Search: "  chatgpt  "})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(captured.sql, "ILIKE"), "search should match both title and content")
	assert.Contains(t, captured.vars, "%chatgpt%")
	assert.NotContains(t, captured.vars, "%  chatgpt  %")
}

func TestPromptRepositoryCounters(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromptRepository(db)

	alice := seedUser(t, db, "alice")
	prompt := seedPrompt(t, db, alice.ID, "counted", nil, true, time.Now())

	require.NoError(t, repo.IncrementViewCount(prompt.ID))
	require.NoError(t, repo.IncrementViewCount(prompt.ID))
	require.NoError(t, repo.IncrementCounter(prompt.ID, "likes_count"))

	got, err := repo.GetByID(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewsCount)
	assert.Equal(t, int64(1), got.LikesCount)

	require.NoError(t, repo.DecrementCounter(prompt.ID, "likes_count"))
	// 计数到 0 之后再减不生效
	require.NoError(t, repo.DecrementCounter(prompt.ID, "likes_count"))

	got, err = repo.GetByID(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikesCount)
}
