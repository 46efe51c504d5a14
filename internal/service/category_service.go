package service

import (
	"context"
	"errors"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/config"
	infraRedis "prompthub-go/internal/infra/redis"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("分类不存在")
	ErrCategorySlugExists = errors.New("分类标识符已存在")
)

const categoryCacheKey = "prompthub:categories"

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取全部分类（Redis 缓存优先，未命中回源数据库）
func (s *CategoryService) List() (*dto.CategoryListData, error) {
	ctx := context.Background()

	var cached dto.CategoryListData
	if ok, err := infraRedis.GetJSON(ctx, categoryCacheKey, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		logger.Warn("Category cache read failed", zap.Error(err))
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	data := buildCategoryListData(categories)

	if infraRedis.Get() != nil {
		if err := infraRedis.SetJSON(ctx, categoryCacheKey, data, config.GetCache().CategoryTTLDuration()); err != nil {
			logger.Warn("Category cache write failed", zap.Error(err))
		}
	}

	return data, nil
}

// GetByID 根据 ID 获取分类
func (s *CategoryService) GetByID(id int64) (*dto.CategoryInfo, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return toCategoryInfo(category), nil
}

// Create 创建分类（管理员，分类数据对普通客户端只读）
func (s *CategoryService) Create(req *dto.CategoryCreateRequest) (*dto.CategoryInfo, error) {
	exists, err := s.categoryRepo.ExistsBySlug(req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategorySlugExists
	}

	category := &model.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return toCategoryInfo(category), nil
}

// Update 更新分类（管理员）
func (s *CategoryService) Update(id int64, req *dto.CategoryUpdateRequest) (*dto.CategoryInfo, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	category, err := s.categoryRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	s.invalidateCache()
	return toCategoryInfo(category), nil
}

func (s *CategoryService) invalidateCache() {
	if infraRedis.Get() == nil {
		return
	}
	if err := infraRedis.Del(context.Background(), categoryCacheKey); err != nil {
		logger.Warn("Category cache invalidation failed", zap.Error(err))
	}
}

func toCategoryInfo(c *model.Category) *dto.CategoryInfo {
	return &dto.CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}

func buildCategoryListData(categories []model.Category) *dto.CategoryListData {
	items := make([]dto.CategoryInfo, 0, len(categories))
	for i := range categories {
		items = append(items, *toCategoryInfo(&categories[i]))
	}
	return &dto.CategoryListData{
		Categories: items,
		Total:      len(items),
	}
}
