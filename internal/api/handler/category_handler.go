package handler

import (
	"errors"
	"strconv"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/api/response"
	"prompthub-go/internal/service"
	"prompthub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List 获取分类列表
// @Summary 获取分类列表
// @Description 获取全部分类，按名称排序
// @Tags 分类
// @Produce json
// @Success 200 {object} response.Response{data=dto.CategoryListData} "获取成功"
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	data, err := h.categoryService.List()
	if err != nil {
		logger.Error("List categories failed", zap.Error(err))
		response.InternalError(c, "获取分类列表失败")
		return
	}

	response.OK(c, "获取分类列表成功", data)
}

// GetByID 获取分类详情
// @Summary 获取分类详情
// @Description 根据 ID 获取单个分类
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response{data=dto.CategoryInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "分类不存在"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的分类ID")
		return
	}

	info, err := h.categoryService.GetByID(categoryID)
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.OK(c, "获取分类成功", info)
}

// Create 创建分类（管理员）
// @Summary 创建分类
// @Description 创建新分类，仅管理员可用
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategoryCreateRequest true "分类信息"
// @Success 201 {object} response.Response{data=dto.CategoryInfo} "创建成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Failure 409 {object} response.ErrorResponse "分类标识符已存在"
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.categoryService.Create(&req)
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.Created(c, "创建分类成功", info)
}

// Update 更新分类（管理员）
// @Summary 更新分类
// @Description 更新分类信息，仅管理员可用
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body dto.CategoryUpdateRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.CategoryInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "分类不存在"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的分类ID")
		return
	}

	var req dto.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.categoryService.Update(categoryID, &req)
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.OK(c, "更新分类成功", info)
}

func handleCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCategorySlugExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Category operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
