package handler

import (
	"errors"
	"strconv"
	"strings"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/api/middleware"
	"prompthub-go/internal/api/response"
	"prompthub-go/internal/service"
	"prompthub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PromptHandler struct {
	promptService *service.PromptService
}

func NewPromptHandler(promptService *service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// GetFeed 获取公开提示词列表
// @Summary 获取公开提示词列表
// @Description 按创建时间倒序返回公开提示词，支持分类、关键词、数量上限筛选
// @Tags 提示词
// @Produce json
// @Param category_id query int false "分类ID"
// @Param q query string false "搜索关键词（匹配标题或内容）"
// @Param limit query int false "返回数量上限"
// @Success 200 {object} response.Response{data=dto.PromptListData} "获取成功"
// @Router /prompts/feed [get]
func (h *PromptHandler) GetFeed(c *gin.Context) {
	opts := service.ListOptions{
		CategoryID: parseOptionalInt64(c, "category_id"),
		Search:     c.Query("q"),
		Limit:      parseLimit(c),
	}

	data, err := h.promptService.List(opts)
	if err != nil {
		logger.Error("Get prompt feed failed", zap.Error(err))
		response.InternalError(c, "获取提示词列表失败")
		return
	}

	response.OK(c, "获取提示词列表成功", data)
}

// GetMyPrompts 获取我的提示词列表
// @Summary 获取我的提示词列表
// @Description 返回当前用户的全部提示词（含私有），支持分类、关键词筛选，only_favorites=true 时只保留已收藏的
// @Tags 提示词
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "分类ID"
// @Param q query string false "搜索关键词"
// @Param only_favorites query bool false "只看已收藏"
// @Param limit query int false "返回数量上限"
// @Success 200 {object} response.Response{data=dto.PromptListData} "获取成功"
// @Router /prompts/my [get]
func (h *PromptHandler) GetMyPrompts(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	opts := service.ListOptions{
		CategoryID:    parseOptionalInt64(c, "category_id"),
		UserID:        &userID,
		Search:        c.Query("q"),
		OnlyFavorites: strings.EqualFold(c.Query("only_favorites"), "true"),
		Limit:         parseLimit(c),
	}

	data, err := h.promptService.List(opts)
	if err != nil {
		logger.Error("Get my prompts failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "获取我的提示词列表失败")
		return
	}

	response.OK(c, "获取我的提示词列表成功", data)
}

// GetMyFavorites 获取我收藏的提示词列表
// @Summary 获取我收藏的提示词列表
// @Description 在公开提示词集合中筛选出当前用户收藏过的条目
// @Tags 提示词
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "分类ID"
// @Param q query string false "搜索关键词"
// @Param limit query int false "返回数量上限"
// @Success 200 {object} response.Response{data=dto.PromptListData} "获取成功"
// @Router /prompts/my/favorites [get]
func (h *PromptHandler) GetMyFavorites(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.promptService.ListFavorited(userID, parseOptionalInt64(c, "category_id"), c.Query("q"), parseLimit(c))
	if err != nil {
		logger.Error("Get my favorite prompts failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "获取收藏列表失败")
		return
	}

	response.OK(c, "获取收藏列表成功", data)
}

// GetDetail 获取提示词详情
// @Summary 获取提示词详情
// @Description 获取单个提示词详情并累加浏览量；私有提示词仅作者可见
// @Tags 提示词
// @Produce json
// @Param id path int true "提示词ID"
// @Success 200 {object} response.Response{data=dto.PromptInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "提示词不存在"
// @Router /prompts/{id} [get]
func (h *PromptHandler) GetDetail(c *gin.Context) {
	promptID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的提示词ID")
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetCurrentUserID(c); ok {
		viewerID = &id
	}

	info, err := h.promptService.GetDetail(promptID, viewerID)
	if err != nil {
		handlePromptError(c, err)
		return
	}

	response.OK(c, "获取提示词详情成功", info)
}

// Create 创建提示词
// @Summary 创建提示词
// @Description 创建新提示词，标签为逗号分隔字符串
// @Tags 提示词
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PromptCreateRequest true "提示词内容"
// @Success 201 {object} response.Response{data=dto.PromptInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /prompts [post]
func (h *PromptHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.PromptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.promptService.Create(userID, &req)
	if err != nil {
		logger.Error("Create prompt failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "创建提示词失败")
		return
	}

	response.Created(c, "创建提示词成功", info)
}

func parseOptionalInt64(c *gin.Context, key string) *int64 {
	if v := c.Query(key); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &id
		}
	}
	return nil
}

func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 {
		limit = 0
	}
	return limit
}

func handlePromptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPromptNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Prompt operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
