package router

import (
	"prompthub-go/internal/api/handler"
	"prompthub-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	promptHandler *handler.PromptHandler,
	interactionHandler *handler.InteractionHandler,
	searchHandler *handler.SearchHandler,
	adminMiddleware gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		users.GET("/:id", userHandler.GetUser)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PUT("/me", userHandler.UpdateProfile)
		}
	}

	// --- 分类模块 ---
	categories := v1.Group("/categories")
	{
		// 公开接口（不需要登录）
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.GetByID)

		// 管理员接口
		admin := categories.Group("", middleware.AuthRequired(), adminMiddleware)
		{
			admin.POST("", categoryHandler.Create)
			admin.PUT("/:id", categoryHandler.Update)
		}
	}

	// --- 提示词模块 ---
	prompts := v1.Group("/prompts")
	{
		// 公开接口
		prompts.GET("/feed", promptHandler.GetFeed)
		// 详情对匿名可见，登录后返回个性化字段
		prompts.GET("/:id", middleware.AuthOptional(), promptHandler.GetDetail)

		promptsAuth := prompts.Group("", middleware.AuthRequired())
		{
			promptsAuth.POST("", promptHandler.Create)
			promptsAuth.GET("/my", promptHandler.GetMyPrompts)
			promptsAuth.GET("/my/favorites", promptHandler.GetMyFavorites)
		}
	}

	// --- 互动模块（点赞/收藏） ---
	interactions := v1.Group("/interactions", middleware.AuthRequired())
	{
		interactions.POST("/:relation/:prompt_id/toggle", interactionHandler.Toggle)
		interactions.GET("/:relation/:prompt_id/status", interactionHandler.GetStatus)
		interactions.POST("/batch/status", interactionHandler.BatchStatus)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search")
	{
		search.GET("/prompts", searchHandler.SearchPrompts)
	}
}
