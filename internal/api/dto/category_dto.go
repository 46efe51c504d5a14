package dto

import "time"

// CategoryCreateRequest 创建分类请求（管理员）
type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"omitempty,max=100"`
	Color       string `json:"color" binding:"omitempty,max=50"`
}

// CategoryUpdateRequest 更新分类请求（管理员）
type CategoryUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" binding:"omitempty,max=100"`
	Color       *string `json:"color" binding:"omitempty,max=50"`
}

// CategoryInfo 分类信息
type CategoryInfo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListData 分类列表数据
type CategoryListData struct {
	Categories []CategoryInfo `json:"categories"`
	Total      int            `json:"total"`
}
