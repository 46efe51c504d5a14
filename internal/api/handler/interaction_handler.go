package handler

import (
	"errors"
	"strconv"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/api/middleware"
	"prompthub-go/internal/api/response"
	"prompthub-go/internal/model"
	"prompthub-go/internal/service"
	"prompthub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InteractionHandler struct {
	interactionService *service.InteractionService
}

func NewInteractionHandler(interactionService *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// Toggle 切换点赞/收藏状态
// @Summary 切换点赞/收藏状态
// @Description 已存在则取消，不存在则建立；返回切换后的状态和总数
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param relation path string true "互动类型: like 或 favorite"
// @Param prompt_id path int true "提示词ID"
// @Success 200 {object} response.Response{data=dto.ToggleData} "切换成功"
// @Failure 400 {object} response.ErrorResponse "未知的互动类型"
// @Failure 401 {object} response.ErrorResponse "请先登录"
// @Failure 404 {object} response.ErrorResponse "提示词不存在"
// @Failure 409 {object} response.ErrorResponse "操作冲突"
// @Router /interactions/{relation}/{prompt_id}/toggle [post]
func (h *InteractionHandler) Toggle(c *gin.Context) {
	rel, promptID, ok := parseRelationTarget(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.interactionService.Toggle(rel, userID, promptID)
	if err != nil {
		handleInteractionError(c, err)
		return
	}

	message := "取消成功"
	if data.Active {
		message = "操作成功"
	}
	response.OK(c, message, data)
}

// GetStatus 查询点赞/收藏状态
// @Summary 查询点赞/收藏状态
// @Description 查询当前用户对指定提示词的互动状态和总数
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param relation path string true "互动类型: like 或 favorite"
// @Param prompt_id path int true "提示词ID"
// @Success 200 {object} response.Response{data=dto.InteractionStatusData} "查询成功"
// @Router /interactions/{relation}/{prompt_id}/status [get]
func (h *InteractionHandler) GetStatus(c *gin.Context) {
	rel, promptID, ok := parseRelationTarget(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	data, err := h.interactionService.GetStatus(rel, userID, promptID)
	if err != nil {
		handleInteractionError(c, err)
		return
	}

	response.OK(c, "查询互动状态成功", data)
}

// BatchStatus 批量查询互动状态
// @Summary 批量查询互动状态
// @Description 批量查询当前用户对多个提示词的点赞和收藏状态
// @Tags 互动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchStatusRequest true "提示词ID列表"
// @Success 200 {object} response.Response{data=dto.BatchStatusData} "查询成功"
// @Router /interactions/batch/status [post]
func (h *InteractionHandler) BatchStatus(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.interactionService.BatchStatus(userID, req.PromptIDs)
	if err != nil {
		logger.Error("Batch interaction status failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "批量查询互动状态失败")
		return
	}

	response.OK(c, "批量查询互动状态成功", data)
}

func parseRelationTarget(c *gin.Context) (model.Relation, int64, bool) {
	rel := model.Relation(c.Param("relation"))
	if !rel.Valid() {
		response.BadRequest(c, "未知的互动类型")
		return "", 0, false
	}

	promptID, err := strconv.ParseInt(c.Param("prompt_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的提示词ID")
		return "", 0, false
	}

	return rel, promptID, true
}

func handleInteractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUnknownRelation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrPromptNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInteractionConflict):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Interaction operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
