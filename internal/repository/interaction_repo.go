package repository

import (
	"prompthub-go/internal/model"

	"gorm.io/gorm"
)

// InteractionRepository 维护 user_likes / user_favorites 两张连接表
// 两种关系共用同一套按 (user_id, prompt_id) 定位的操作
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Exists 查询互动记录是否存在
func (r *InteractionRepository) Exists(rel model.Relation, userID, promptID int64) (bool, error) {
	var count int64
	err := r.scope(rel).
		Where("user_id = ? AND prompt_id = ?", userID, promptID).Count(&count).Error
	return count > 0, err
}

// Create 创建互动记录，唯一索引会拒绝同一对 (user_id, prompt_id) 的重复插入
func (r *InteractionRepository) Create(rel model.Relation, userID, promptID int64) error {
	if rel == model.RelationLike {
		return r.db.Create(&model.Like{UserID: userID, PromptID: promptID}).Error
	}
	return r.db.Create(&model.Favorite{UserID: userID, PromptID: promptID}).Error
}

// Delete 删除互动记录，返回是否真的删掉了一条
func (r *InteractionRepository) Delete(rel model.Relation, userID, promptID int64) (bool, error) {
	var result *gorm.DB
	if rel == model.RelationLike {
		result = r.db.Where("user_id = ? AND prompt_id = ?", userID, promptID).Delete(&model.Like{})
	} else {
		result = r.db.Where("user_id = ? AND prompt_id = ?", userID, promptID).Delete(&model.Favorite{})
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByPrompt 统计提示词的互动数
func (r *InteractionRepository) CountByPrompt(rel model.Relation, promptID int64) (int64, error) {
	var count int64
	err := r.scope(rel).Where("prompt_id = ?", promptID).Count(&count).Error
	return count, err
}

// BatchCheck 批量查询互动状态
func (r *InteractionRepository) BatchCheck(rel model.Relation, userID int64, promptIDs []int64) (map[int64]bool, error) {
	if len(promptIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var matchedIDs []int64
	err := r.scope(rel).
		Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).
		Pluck("prompt_id", &matchedIDs).Error
	if err != nil {
		return nil, err
	}

	matched := make(map[int64]bool, len(matchedIDs))
	for _, id := range matchedIDs {
		matched[id] = true
	}

	result := make(map[int64]bool, len(promptIDs))
	for _, id := range promptIDs {
		result[id] = matched[id]
	}
	return result, nil
}

func (r *InteractionRepository) scope(rel model.Relation) *gorm.DB {
	if rel == model.RelationLike {
		return r.db.Model(&model.Like{})
	}
	return r.db.Model(&model.Favorite{})
}
