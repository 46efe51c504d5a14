package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/config"
	infraES "prompthub-go/internal/infra/elasticsearch"
	"prompthub-go/internal/model"
	"prompthub-go/internal/repository"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	promptRepo *repository.PromptRepository
}

func NewSearchService(promptRepo *repository.PromptRepository) *SearchService {
	return &SearchService{promptRepo: promptRepo}
}

// SearchPrompts 搜索提示词（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchPrompts(req *dto.SearchPromptRequest) (*dto.SearchPromptData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	data, err := s.searchFromES(req)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		return s.searchFromDB(req)
	}
	return data, nil
}

func (s *SearchService) searchFromES(req *dto.SearchPromptRequest) (*dto.SearchPromptData, error) {
	cfg := config.GetElasticsearch()
	indexName := cfg.Index["prompts"]
	if indexName == "" {
		indexName = "prompts"
	}

	query := s.buildESQuery(req)
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, indexName, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	promptIDs := make([]int64, 0, len(esResp.Hits.Hits))
	highlights := make(map[int64]map[string][]string)
	for _, h := range esResp.Hits.Hits {
		promptIDs = append(promptIDs, h.Source.ID)
		if len(h.Highlight) > 0 {
			highlights[h.Source.ID] = h.Highlight
		}
	}

	total := esResp.Hits.Total.Value
	if len(promptIDs) == 0 {
		return s.buildSearchData(nil, highlights, total, req.Page, req.PageSize), nil
	}

	prompts, err := s.promptRepo.GetByIDsWithAuthor(promptIDs)
	if err != nil {
		return nil, err
	}

	promptMap := make(map[int64]*model.Prompt)
	for i := range prompts {
		promptMap[prompts[i].ID] = &prompts[i]
	}

	// 按 ES 相关度顺序回填
	ordered := make([]model.Prompt, 0, len(promptIDs))
	for _, id := range promptIDs {
		if p, ok := promptMap[id]; ok {
			ordered = append(ordered, *p)
		}
	}

	return s.buildSearchData(ordered, highlights, total, req.Page, req.PageSize), nil
}

func (s *SearchService) buildESQuery(req *dto.SearchPromptRequest) map[string]interface{} {
	boolQ := map[string]interface{}{
		"must": []interface{}{},
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"is_public": true}},
		},
	}

	if q := strings.TrimSpace(req.Q); q != "" {
		boolQ["must"] = append(boolQ["must"].([]interface{}),
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":    q,
					"fields":   []string{"title^3", "content^1"},
					"type":     "best_fields",
					"operator": "or",
				},
			},
		)
	}

	if req.CategoryID != nil {
		boolQ["filter"] = append(boolQ["filter"].([]interface{}),
			map[string]interface{}{"term": map[string]interface{}{"category_id": *req.CategoryID}})
	}

	sortConfig := []interface{}{}
	switch req.Sort {
	case "time":
		sortConfig = append(sortConfig, map[string]interface{}{"created_at": map[string]string{"order": "desc"}})
	case "hot":
		sortConfig = append(sortConfig, map[string]interface{}{"hot_score": map[string]string{"order": "desc"}})
	default:
		sortConfig = append(sortConfig, map[string]interface{}{"_score": map[string]string{"order": "desc"}})
		sortConfig = append(sortConfig, map[string]interface{}{"created_at": map[string]string{"order": "desc"}})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQ,
		},
		"_source": []string{"id"},
		"from":    (req.Page - 1) * req.PageSize,
		"size":    req.PageSize,
		"sort":    sortConfig,
	}

	if strings.TrimSpace(req.Q) != "" {
		query["highlight"] = map[string]interface{}{
			"fields": map[string]interface{}{
				"title":   map[string]interface{}{},
				"content": map[string]interface{}{},
			},
			"pre_tags":  []string{"<em>"},
			"post_tags": []string{"</em>"},
		}
	}

	return query
}

func (s *SearchService) searchFromDB(req *dto.SearchPromptRequest) (*dto.SearchPromptData, error) {
	skip := (req.Page - 1) * req.PageSize

	prompts, total, err := s.promptRepo.SearchByKeyword(req.Q, req.CategoryID, skip, req.PageSize)
	if err != nil {
		return nil, err
	}

	return s.buildSearchData(prompts, nil, total, req.Page, req.PageSize), nil
}

func (s *SearchService) buildSearchData(prompts []model.Prompt, highlights map[int64]map[string][]string, total int64, page, pageSize int) *dto.SearchPromptData {
	items := make([]dto.SearchPromptInfo, 0, len(prompts))
	for i := range prompts {
		p := &prompts[i]
		authorName := ""
		if p.Author.ID != 0 {
			authorName = p.Author.UserName
		}
		items = append(items, dto.SearchPromptInfo{
			ID:             p.ID,
			UserID:         p.UserID,
			AuthorName:     authorName,
			Title:          p.Title,
			Content:        p.Content,
			CategoryID:     p.CategoryID,
			Tags:           p.Tags,
			LikesCount:     p.LikesCount,
			FavoritesCount: p.FavoritesCount,
			ViewsCount:     p.ViewsCount,
			Highlight:      highlights[p.ID],
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.SearchPromptData{
		Prompts:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SyncPromptToES 同步单个提示词到 ES（索引同步 worker 调用）
// 私有提示词不进索引，已入索引的在转为私有后删除
func (s *SearchService) SyncPromptToES(promptID int64) error {
	prompt, err := s.promptRepo.GetByIDWithAssociations(promptID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if !prompt.IsPublic {
		return infraES.DeletePrompt(ctx, promptID)
	}

	authorName := ""
	if prompt.Author.ID != 0 {
		authorName = prompt.Author.UserName
	}

	return infraES.SyncPrompt(ctx, prompt, authorName)
}

// RemovePromptFromES 从 ES 删除提示词（索引同步 worker 调用）
func (s *SearchService) RemovePromptFromES(promptID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return infraES.DeletePrompt(ctx, promptID)
}
