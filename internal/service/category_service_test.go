package service

import (
	"testing"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceList(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	require.NoError(t, db.Create(&model.Category{Name: "写作", Slug: "writing"}).Error)
	require.NoError(t, db.Create(&model.Category{Name: "编程", Slug: "coding"}).Error)

	data, err := svc.List()
	require.NoError(t, err)
	require.Equal(t, 2, data.Total)
}

func TestCategoryServiceCreateDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Create(&dto.CategoryCreateRequest{Name: "写作", Slug: "writing"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CategoryCreateRequest{Name: "另一个写作", Slug: "writing"})
	assert.ErrorIs(t, err, ErrCategorySlugExists)
}

func TestCategoryServiceUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	created, err := svc.Create(&dto.CategoryCreateRequest{Name: "写作", Slug: "writing"})
	require.NoError(t, err)

	name := "文案写作"
	info, err := svc.Update(created.ID, &dto.CategoryUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "文案写作", info.Name)

	_, err = svc.Update(created.ID, &dto.CategoryUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	_, err = svc.Update(99999, &dto.CategoryUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
