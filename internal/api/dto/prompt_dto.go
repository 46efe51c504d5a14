package dto

import "time"

// PromptCreateRequest 创建提示词请求
// Tags 为逗号分隔的标签输入，服务端拆分、去空白、丢弃空项
type PromptCreateRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Content    string `json:"content" binding:"required"`
	CategoryID *int64 `json:"category_id"`
	Tags       string `json:"tags"`
	IsPublic   bool   `json:"is_public"`
}

// AuthorBrief 提示词中嵌套的作者简要信息
type AuthorBrief struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// PromptInfo 提示词详情
type PromptInfo struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"user_id"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	CategoryID     *int64        `json:"category_id"`
	Tags           []string      `json:"tags"`
	IsPublic       bool          `json:"is_public"`
	LikesCount     int64         `json:"likes_count"`
	FavoritesCount int64         `json:"favorites_count"`
	ViewsCount     int64         `json:"views_count"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Author         *AuthorBrief  `json:"author,omitempty"`
	Category       *CategoryInfo `json:"category,omitempty"`
	IsLiked        bool          `json:"is_liked"`
	IsFavorited    bool          `json:"is_favorited"`
}

// PromptListData 提示词列表响应数据
type PromptListData struct {
	Prompts []PromptInfo `json:"prompts"`
	Total   int          `json:"total"`
}
