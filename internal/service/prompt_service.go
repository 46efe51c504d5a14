package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/config"
	infraKafka "prompthub-go/internal/infra/kafka"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrPromptNotFound = errors.New("提示词不存在")

// ListOptions 一次列表请求的视图参数
// UserID 同时承担两个角色：作者过滤（"我的提示词"，可见私有内容）
// 和收藏过滤的行为主体
type ListOptions struct {
	CategoryID    *int64
	UserID        *int64
	Search        string
	OnlyFavorites bool
	Limit         int
}

type PromptService struct {
	promptRepo *repository.PromptRepository
}

func NewPromptService(promptRepo *repository.PromptRepository) *PromptService {
	return &PromptService{promptRepo: promptRepo}
}

// List 提示词列表查询
// 先由仓储层完成分类/作者/可见性/搜索过滤，收藏过滤在取回后补做：
// OnlyFavorites 为真且 UserID 存在时只保留该用户收藏过的条目；
// UserID 缺失时原样放行（没有"当前用户"可供比对，这是有意保留的回退行为）
func (s *PromptService) List(opts ListOptions) (*dto.PromptListData, error) {
	prompts, err := s.promptRepo.List(repository.ListPromptOptions{
		CategoryID: opts.CategoryID,
		UserID:     opts.UserID,
		Search:     opts.Search,
		Limit:      opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	if opts.OnlyFavorites && opts.UserID != nil {
		prompts = filterFavorited(prompts, *opts.UserID)
	}

	return buildPromptListData(prompts, opts.UserID), nil
}

// ListFavorited 获取用户收藏的提示词列表
// 在公开集合上复用收藏后置过滤，行为主体与作者过滤解耦
func (s *PromptService) ListFavorited(viewerID int64, categoryID *int64, search string, limit int) (*dto.PromptListData, error) {
	prompts, err := s.promptRepo.List(repository.ListPromptOptions{
		CategoryID: categoryID,
		Search:     search,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	prompts = filterFavorited(prompts, viewerID)
	return buildPromptListData(prompts, &viewerID), nil
}

// GetDetail 获取提示词详情（访问时浏览量 +1）
// 私有提示词只有作者本人可见，其他人视同不存在
func (s *PromptService) GetDetail(promptID int64, viewerID *int64) (*dto.PromptInfo, error) {
	prompt, err := s.promptRepo.GetByIDWithAssociations(promptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	if !prompt.IsPublic && (viewerID == nil || *viewerID != prompt.UserID) {
		return nil, ErrPromptNotFound
	}

	// 浏览计数是尽力而为的副作用，失败不影响本次访问
	if err := s.promptRepo.IncrementViewCount(promptID); err != nil {
		logger.Warn("Increment view count failed", zap.Int64("prompt_id", promptID), zap.Error(err))
	} else {
		prompt.ViewsCount++
	}

	return toPromptInfo(prompt, viewerID, true), nil
}

// Create 创建提示词
func (s *PromptService) Create(userID int64, req *dto.PromptCreateRequest) (*dto.PromptInfo, error) {
	prompt := &model.Prompt{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       ParseTags(req.Tags),
		IsPublic:   req.IsPublic,
	}

	if err := s.promptRepo.Create(prompt); err != nil {
		return nil, err
	}

	notifyPromptChanged(prompt.ID, infraKafka.PromptActionUpsert, "created")

	return toPromptInfo(prompt, &userID, false), nil
}

// ParseTags 把逗号分隔的标签输入拆成标签列表
// 每项去掉首尾空白，空项丢弃，输入顺序保留
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// filterFavorited 只保留 userID 收藏过的提示词，两次应用结果相同
func filterFavorited(prompts []model.Prompt, userID int64) []model.Prompt {
	filtered := make([]model.Prompt, 0, len(prompts))
	for i := range prompts {
		for _, fav := range prompts[i].Favorites {
			if fav.UserID == userID {
				filtered = append(filtered, prompts[i])
				break
			}
		}
	}
	return filtered
}

// notifyPromptChanged 发送索引同步事件，失败只记日志
func notifyPromptChanged(promptID int64, action, reason string) {
	if !infraKafka.Ready() {
		return
	}

	topic := config.GetKafka().Topics["prompt_events"]
	if topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &infraKafka.PromptEvent{PromptID: promptID, Action: action, Reason: reason}
	if err := infraKafka.SendPromptEvent(ctx, topic, event); err != nil {
		logger.Warn("Send prompt event failed",
			zap.Int64("prompt_id", promptID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// toPromptInfo 将 model.Prompt 转换为 dto.PromptInfo
func toPromptInfo(prompt *model.Prompt, viewerID *int64, includeAuthor bool) *dto.PromptInfo {
	info := &dto.PromptInfo{
		ID:             prompt.ID,
		UserID:         prompt.UserID,
		Title:          prompt.Title,
		Content:        prompt.Content,
		CategoryID:     prompt.CategoryID,
		Tags:           prompt.Tags,
		IsPublic:       prompt.IsPublic,
		LikesCount:     prompt.LikesCount,
		FavoritesCount: prompt.FavoritesCount,
		ViewsCount:     prompt.ViewsCount,
		CreatedAt:      prompt.CreatedAt,
		UpdatedAt:      prompt.UpdatedAt,
	}

	if includeAuthor && prompt.Author.ID != 0 {
		info.Author = &dto.AuthorBrief{
			ID:       prompt.Author.ID,
			Username: prompt.Author.UserName,
			Avatar:   prompt.Author.Avatar,
		}
	}

	if prompt.Category != nil && prompt.Category.ID != 0 {
		info.Category = toCategoryInfo(prompt.Category)
	}

	if viewerID != nil {
		for _, like := range prompt.Likes {
			if like.UserID == *viewerID {
				info.IsLiked = true
				break
			}
		}
		for _, fav := range prompt.Favorites {
			if fav.UserID == *viewerID {
				info.IsFavorited = true
				break
			}
		}
	}

	return info
}

func buildPromptListData(prompts []model.Prompt, viewerID *int64) *dto.PromptListData {
	items := make([]dto.PromptInfo, 0, len(prompts))
	for i := range prompts {
		items = append(items, *toPromptInfo(&prompts[i], viewerID, true))
	}
	return &dto.PromptListData{
		Prompts: items,
		Total:   len(items),
	}
}
