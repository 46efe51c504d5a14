package dto

// ToggleData 切换点赞/收藏后的结果
type ToggleData struct {
	PromptID int64  `json:"prompt_id"`
	Relation string `json:"relation"`
	Active   bool   `json:"active"`
	Total    int64  `json:"total"`
}

// InteractionStatusData 单个提示词的互动状态
type InteractionStatusData struct {
	PromptID int64  `json:"prompt_id"`
	Relation string `json:"relation"`
	Active   bool   `json:"active"`
	Total    int64  `json:"total"`
}

// BatchStatusRequest 批量查询互动状态请求
type BatchStatusRequest struct {
	PromptIDs []int64 `json:"prompt_ids" binding:"required,min=1,max=100"`
}

// BatchStatusData 批量互动状态结果
type BatchStatusData struct {
	Likes     map[int64]bool `json:"likes"`
	Favorites map[int64]bool `json:"favorites"`
}
