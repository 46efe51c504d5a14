package model

import "time"

// Category 分类模型，长期存在的参考数据，只通过管理端维护
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:分类ID" json:"id"`
	Name        string    `gorm:"size:100;not null;comment:分类名称" json:"name"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex;comment:分类标识符" json:"slug"`
	Description string    `gorm:"type:text;comment:分类描述" json:"description"`
	Icon        string    `gorm:"size:100;comment:分类图标" json:"icon"`
	Color       string    `gorm:"size:50;comment:分类颜色" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`

	// 关联关系
	Prompts []Prompt `gorm:"foreignKey:CategoryID" json:"prompts,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
