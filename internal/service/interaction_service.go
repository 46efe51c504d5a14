package service

import (
	"errors"

	"prompthub-go/internal/api/dto"
	infraKafka "prompthub-go/internal/infra/kafka"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrAuthRequired        = errors.New("请先登录")
	ErrUnknownRelation     = errors.New("未知的互动类型")
	ErrInteractionConflict = errors.New("操作冲突，请刷新后重试")
)

// InteractionService 点赞/收藏切换协议，两种关系走同一条路径
type InteractionService struct {
	interactionRepo *repository.InteractionRepository
	promptRepo      *repository.PromptRepository
}

func NewInteractionService(interactionRepo *repository.InteractionRepository, promptRepo *repository.PromptRepository) *InteractionService {
	return &InteractionService{interactionRepo: interactionRepo, promptRepo: promptRepo}
}

// Toggle 切换用户对提示词的点赞/收藏状态
// 匿名调用在访问存储前拒绝；存在即删除、不存在即插入，
// (user_id, prompt_id) 唯一索引兜底并发下的重复插入，
// prompts 表上的计数列随实际生效的插入/删除原子增减
func (s *InteractionService) Toggle(rel model.Relation, userID, promptID int64) (*dto.ToggleData, error) {
	if !rel.Valid() {
		return nil, ErrUnknownRelation
	}
	if userID <= 0 {
		return nil, ErrAuthRequired
	}

	if _, err := s.promptRepo.GetByID(promptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	exists, err := s.interactionRepo.Exists(rel, userID, promptID)
	if err != nil {
		return nil, err
	}

	var active bool
	if exists {
		deleted, err := s.interactionRepo.Delete(rel, userID, promptID)
		if err != nil {
			return nil, err
		}
		// 并发删除时只有真正删掉记录的一方回退计数
		if deleted {
			if err := s.promptRepo.DecrementCounter(promptID, rel.CounterColumn()); err != nil {
				logger.Warn("Decrement counter failed",
					zap.Int64("prompt_id", promptID),
					zap.String("relation", string(rel)),
					zap.Error(err),
				)
			}
		}
		active = false
	} else {
		if err := s.interactionRepo.Create(rel, userID, promptID); err != nil {
			// 并发下另一请求先插入同一条记录，唯一索引拒绝本次插入
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrInteractionConflict
			}
			return nil, err
		}
		if err := s.promptRepo.IncrementCounter(promptID, rel.CounterColumn()); err != nil {
			logger.Warn("Increment counter failed",
				zap.Int64("prompt_id", promptID),
				zap.String("relation", string(rel)),
				zap.Error(err),
			)
		}
		active = true
	}

	total, err := s.interactionRepo.CountByPrompt(rel, promptID)
	if err != nil {
		return nil, err
	}

	notifyPromptChanged(promptID, infraKafka.PromptActionUpsert, string(rel))

	return &dto.ToggleData{
		PromptID: promptID,
		Relation: string(rel),
		Active:   active,
		Total:    total,
	}, nil
}

// GetStatus 查询用户对提示词的互动状态
func (s *InteractionService) GetStatus(rel model.Relation, userID, promptID int64) (*dto.InteractionStatusData, error) {
	if !rel.Valid() {
		return nil, ErrUnknownRelation
	}

	if _, err := s.promptRepo.GetByID(promptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	active, err := s.interactionRepo.Exists(rel, userID, promptID)
	if err != nil {
		return nil, err
	}

	total, err := s.interactionRepo.CountByPrompt(rel, promptID)
	if err != nil {
		return nil, err
	}

	return &dto.InteractionStatusData{
		PromptID: promptID,
		Relation: string(rel),
		Active:   active,
		Total:    total,
	}, nil
}

// BatchStatus 批量查询点赞和收藏状态
func (s *InteractionService) BatchStatus(userID int64, promptIDs []int64) (*dto.BatchStatusData, error) {
	likes, err := s.interactionRepo.BatchCheck(model.RelationLike, userID, promptIDs)
	if err != nil {
		return nil, err
	}

	favorites, err := s.interactionRepo.BatchCheck(model.RelationFavorite, userID, promptIDs)
	if err != nil {
		return nil, err
	}

	return &dto.BatchStatusData{
		Likes:     likes,
		Favorites: favorites,
	}, nil
}
