package model

import "time"

// Prompt 提示词模型
type Prompt struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;comment:提示词标识" json:"id"`
	UserID         int64     `gorm:"not null;index:idx_prompts_user_id;comment:作者ID" json:"user_id"`
	Title          string    `gorm:"size:200;not null;comment:标题" json:"title"`
	Content        string    `gorm:"type:text;not null;comment:提示词正文" json:"content"`
	CategoryID     *int64    `gorm:"index:idx_prompts_category_id;comment:所属分类ID" json:"category_id"`
	Tags           []string  `gorm:"serializer:json;comment:标签列表" json:"tags"`
	// 不设列默认值：带 default 标签的 bool 在插入时会跳过零值 false，私有提示词会被存成公开
	IsPublic       bool      `gorm:"not null;index:idx_prompts_is_public;comment:是否公开" json:"is_public"`
	LikesCount     int64     `gorm:"not null;default:0;comment:点赞数" json:"likes_count"`
	FavoritesCount int64     `gorm:"not null;default:0;comment:收藏数" json:"favorites_count"`
	ViewsCount     int64     `gorm:"not null;default:0;comment:浏览量" json:"views_count"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_prompts_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Author    User       `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Likes     []Like     `gorm:"foreignKey:PromptID" json:"likes,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:PromptID" json:"favorites,omitempty"`
}

func (Prompt) TableName() string {
	return "prompts"
}
