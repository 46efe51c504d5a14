package repository

import (
	"strings"

	"prompthub-go/internal/model"

	"gorm.io/gorm"
)

// ListPromptOptions 一次列表查询的筛选条件
// UserID 存在时按作者过滤（作者可见自己的私有提示词），否则只返回公开内容
type ListPromptOptions struct {
	CategoryID *int64
	UserID     *int64
	Search     string
	Limit      int
}

type PromptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// GetByID 根据 ID 获取提示词
func (r *PromptRepository) GetByID(id int64) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.db.First(&prompt, id).Error
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

// GetByIDWithAssociations 根据 ID 获取提示词（含作者、分类、点赞和收藏记录）
func (r *PromptRepository) GetByIDWithAssociations(id int64) (*model.Prompt, error) {
	var prompt model.Prompt
	err := r.db.Preload("Author").Preload("Category").
		Preload("Likes").Preload("Favorites").
		First(&prompt, id).Error
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

// Create 创建提示词记录
func (r *PromptRepository) Create(prompt *model.Prompt) error {
	return r.db.Create(prompt).Error
}

// List 提示词列表查询（分类、作者、可见性、搜索、条数上限）
// 始终带上分类以及完整的点赞/收藏记录，按 created_at 倒序
func (r *PromptRepository) List(opts ListPromptOptions) ([]model.Prompt, error) {
	query := r.db.Model(&model.Prompt{})

	if opts.CategoryID != nil {
		query = query.Where("category_id = ?", *opts.CategoryID)
	}
	if opts.UserID != nil {
		query = query.Where("user_id = ?", *opts.UserID)
	} else {
		query = query.Where("is_public = ?", true)
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		query = query.Where("title ILIKE ? OR content ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query = query.Order("created_at DESC").
		Preload("Author").Preload("Category").
		Preload("Likes").Preload("Favorites")

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var prompts []model.Prompt
	if err := query.Find(&prompts).Error; err != nil {
		return nil, err
	}

	return prompts, nil
}

// SearchByKeyword 按关键词分页搜索公开提示词（搜索模块的 DB 降级路径）
func (r *PromptRepository) SearchByKeyword(keyword string, categoryID *int64, skip, limit int) ([]model.Prompt, int64, error) {
	query := r.db.Model(&model.Prompt{}).Where("is_public = ?", true)

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search := strings.TrimSpace(keyword); search != "" {
		query = query.Where("title ILIKE ? OR content ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prompts []model.Prompt
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).
		Preload("Author").Preload("Category").
		Find(&prompts).Error
	if err != nil {
		return nil, 0, err
	}
	return prompts, total, nil
}

// GetByIDsWithAuthor 批量查询提示词（搜索结果回表用）
func (r *PromptRepository) GetByIDsWithAuthor(ids []int64) ([]model.Prompt, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var prompts []model.Prompt
	err := r.db.Preload("Author").Preload("Category").
		Where("id IN ?", ids).Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// IncrementViewCount 浏览量 +1
func (r *PromptRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Prompt{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// IncrementCounter 互动计数 +1（column 只接受 Relation.CounterColumn 的取值）
func (r *PromptRepository) IncrementCounter(id int64, column string) error {
	return r.db.Model(&model.Prompt{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column + " + 1")).Error
}

// DecrementCounter 互动计数 -1，计数不会降到负数
func (r *PromptRepository) DecrementCounter(id int64, column string) error {
	return r.db.Model(&model.Prompt{}).Where("id = ? AND "+column+" > 0", id).
		UpdateColumn(column, gorm.Expr(column + " - 1")).Error
}
