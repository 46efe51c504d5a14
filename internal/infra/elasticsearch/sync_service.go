package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prompthub-go/internal/config"
	"prompthub-go/internal/model"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
)

// ESPromptDoc ES 提示词文档结构
type ESPromptDoc struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"user_id"`
	AuthorName     string   `json:"author_name"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	CategoryID     int64    `json:"category_id"`
	CategorySlug   string   `json:"category_slug"`
	Tags           []string `json:"tags"`
	IsPublic       bool     `json:"is_public"`
	LikesCount     int64    `json:"likes_count"`
	FavoritesCount int64    `json:"favorites_count"`
	ViewsCount     int64    `json:"views_count"`
	HotScore       float64  `json:"hot_score"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func hotScore(views, likes, favorites int64) float64 {
	return (float64(views)*0.5 + float64(likes)*2.0 + float64(favorites)*1.5) / 1000
}

func promptToESDoc(p *model.Prompt, authorName string) *ESPromptDoc {
	doc := &ESPromptDoc{
		ID:             p.ID,
		UserID:         p.UserID,
		AuthorName:     authorName,
		Title:          p.Title,
		Content:        p.Content,
		Tags:           p.Tags,
		IsPublic:       p.IsPublic,
		LikesCount:     p.LikesCount,
		FavoritesCount: p.FavoritesCount,
		ViewsCount:     p.ViewsCount,
		HotScore:       hotScore(p.ViewsCount, p.LikesCount, p.FavoritesCount),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.CategoryID != nil {
		doc.CategoryID = *p.CategoryID
	}
	if p.Category != nil {
		doc.CategorySlug = p.Category.Slug
	}
	return doc
}

func promptIndexName() string {
	cfg := config.GetElasticsearch()
	indexName := cfg.Index["prompts"]
	if indexName == "" {
		indexName = "prompts"
	}
	return indexName
}

// SyncPrompt 同步单个提示词到 ES
func SyncPrompt(ctx context.Context, p *model.Prompt, authorName string) error {
	doc := promptToESDoc(p, authorName)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, promptIndexName(), fmt.Sprintf("%d", p.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Prompt synced to ES", zap.Int64("prompt_id", p.ID))
	return nil
}

// DeletePrompt 从 ES 删除提示词
func DeletePrompt(ctx context.Context, promptID int64) error {
	resp, err := Delete(ctx, promptIndexName(), fmt.Sprintf("%d", promptID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
