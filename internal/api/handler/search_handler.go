package handler

import (
	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/api/response"
	"prompthub-go/internal/service"
	"prompthub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchPrompts 搜索提示词
// @Summary 搜索提示词
// @Description 根据关键词全文搜索公开提示词，支持分类筛选和排序
// @Tags 搜索
// @Produce json
// @Param q query string false "搜索关键词"
// @Param category_id query int false "分类ID"
// @Param sort query string false "排序方式: relevance, time, hot" default(relevance)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.SearchPromptData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /search/prompts [get]
func (h *SearchHandler) SearchPrompts(c *gin.Context) {
	var req dto.SearchPromptRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	req.CategoryID = parseOptionalInt64(c, "category_id")

	data, err := h.searchService.SearchPrompts(&req)
	if err != nil {
		logger.Error("Search prompts failed", zap.Error(err))
		response.InternalError(c, "搜索失败")
		return
	}

	response.OK(c, "搜索成功", data)
}
