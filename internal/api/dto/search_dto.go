package dto

// SearchPromptRequest 搜索请求参数
type SearchPromptRequest struct {
	Q          string `form:"q"`
	CategoryID *int64 `form:"category_id"`
	Sort       string `form:"sort"` // relevance, time, hot
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// SearchPromptInfo 搜索结果中的提示词信息
type SearchPromptInfo struct {
	ID             int64               `json:"id"`
	UserID         int64               `json:"user_id"`
	AuthorName     string              `json:"author_name"`
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	CategoryID     *int64              `json:"category_id"`
	Tags           []string            `json:"tags"`
	LikesCount     int64               `json:"likes_count"`
	FavoritesCount int64               `json:"favorites_count"`
	ViewsCount     int64               `json:"views_count"`
	Highlight      map[string][]string `json:"highlight,omitempty"`
}

// SearchPromptData 搜索结果
type SearchPromptData struct {
	Prompts    []SearchPromptInfo `json:"prompts"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int64              `json:"total_pages"`
}
