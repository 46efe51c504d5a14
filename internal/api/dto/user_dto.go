package dto

// UserUpdateRequest 更新用户资料请求
type UserUpdateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=50"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
}
