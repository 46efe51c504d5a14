package service

import (
	"testing"
	"time"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"normal", "ai,chatgpt,coding", []string{"ai", "chatgpt", "coding"}},
		{"whitespace trimmed", " ai, , chatgpt ,coding ", []string{"ai", "chatgpt", "coding"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"order preserved", "z,a,m", []string{"z", "a", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestFilterFavorited(t *testing.T) {
	prompts := []model.Prompt{
		{ID: 1, Favorites: []model.Favorite{{UserID: 7, PromptID: 1}}},
		{ID: 2},
		{ID: 3, Favorites: []model.Favorite{{UserID: 9, PromptID: 3}, {UserID: 7, PromptID: 3}}},
	}

	filtered := filterFavorited(prompts, 7)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	// 重复过滤不再改变结果
	again := filterFavorited(filtered, 7)
	assert.Equal(t, filtered, again)

	// 没有收藏记录的用户过滤后为空
	assert.Empty(t, filterFavorited(prompts, 42))
}

func TestPromptServiceListOnlyFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	favorited := seedPrompt(t, db, alice.ID, "favorited", true, base)
	seedPrompt(t, db, alice.ID, "plain", true, base.Add(time.Minute))
	seedFavorite(t, db, alice.ID, favorited.ID)

	data, err := svc.List(ListOptions{UserID: &alice.ID, OnlyFavorites: true})
	require.NoError(t, err)
	require.Equal(t, 1, data.Total)
	assert.Equal(t, favorited.ID, data.Prompts[0].ID)
	assert.True(t, data.Prompts[0].IsFavorited)
}

// OnlyFavorites 在没有当前用户时原样放行，不做过滤
func TestPromptServiceListOnlyFavoritesWithoutUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	favorited := seedPrompt(t, db, alice.ID, "favorited", true, base)
	seedPrompt(t, db, alice.ID, "plain", true, base.Add(time.Minute))
	seedFavorite(t, db, alice.ID, favorited.ID)

	data, err := svc.List(ListOptions{OnlyFavorites: true})
	require.NoError(t, err)
	assert.Equal(t, 2, data.Total)
}

func TestPromptServiceListFavorited(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	alicePublic := seedPrompt(t, db, alice.ID, "alice public", true, base)
	alicePrivate := seedPrompt(t, db, alice.ID, "alice private", false, base.Add(time.Minute))
	seedFavorite(t, db, bob.ID, alicePublic.ID)
	seedFavorite(t, db, bob.ID, alicePrivate.ID)

	// 收藏列表建立在公开集合上，收藏过的私有提示词不出现
	data, err := svc.ListFavorited(bob.ID, nil, "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, data.Total)
	assert.Equal(t, alicePublic.ID, data.Prompts[0].ID)
}

func TestPromptServiceGetDetail(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	public := seedPrompt(t, db, alice.ID, "public", true, time.Now())
	private := seedPrompt(t, db, alice.ID, "private", false, time.Now())

	// 每次访问浏览量 +1，结果里带上本次访问
	info, err := svc.GetDetail(public.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.ViewsCount)

	info, err = svc.GetDetail(public.ID, &bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.ViewsCount)

	// 私有提示词对非作者视同不存在
	_, err = svc.GetDetail(private.ID, nil)
	assert.ErrorIs(t, err, ErrPromptNotFound)
	_, err = svc.GetDetail(private.ID, &bob.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)

	// 作者本人可见
	info, err = svc.GetDetail(private.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, private.ID, info.ID)

	_, err = svc.GetDetail(99999, nil)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestPromptServiceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(repository.NewPromptRepository(db))

	alice := seedUser(t, db, "alice")

	info, err := svc.Create(alice.ID, &dto.PromptCreateRequest{
		Title:    "新提示词",
		Content:  "写一段产品介绍",
		Tags:     " ai, chatgpt ,",
		IsPublic: false,
	})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
	assert.Equal(t, []string{"ai", "chatgpt"}, info.Tags)
	assert.False(t, info.IsPublic)

	stored, err := repository.NewPromptRepository(db).GetByID(info.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "chatgpt"}, stored.Tags)
	assert.Equal(t, alice.ID, stored.UserID)
	// 私有标记必须落到存储层，不能只停留在内存对象上
	assert.False(t, stored.IsPublic)
}
