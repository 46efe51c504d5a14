package model

import "time"

// Like 点赞记录，(user_id, prompt_id) 上的唯一索引保证每对最多一条
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_prompt_like;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	PromptID  int64     `gorm:"not null;uniqueIndex:uq_user_prompt_like;index:idx_likes_prompt_id;comment:被点赞提示词ID" json:"prompt_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`

	// 关联关系
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Prompt Prompt `gorm:"foreignKey:PromptID" json:"prompt,omitempty"`
}

func (Like) TableName() string {
	return "user_likes"
}

// Favorite 收藏记录，约束与 Like 相同
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_prompt_favorite;index:idx_favorites_user_id;comment:收藏用户ID" json:"user_id"`
	PromptID  int64     `gorm:"not null;uniqueIndex:uq_user_prompt_favorite;index:idx_favorites_prompt_id;comment:被收藏提示词ID" json:"prompt_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`

	// 关联关系
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Prompt Prompt `gorm:"foreignKey:PromptID" json:"prompt,omitempty"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}

// Relation 互动关系类型，点赞和收藏走同一套切换协议
type Relation string

const (
	RelationLike     Relation = "like"
	RelationFavorite Relation = "favorite"
)

// Valid 判断是否为已知的互动关系
func (r Relation) Valid() bool {
	return r == RelationLike || r == RelationFavorite
}

// CounterColumn 返回该关系在 prompts 表上镜像的计数列
func (r Relation) CounterColumn() string {
	if r == RelationLike {
		return "likes_count"
	}
	return "favorites_count"
}
