package app

import (
	"weibo_backend/docs"
	"weibo_backend/internal/config"
	"weibo_backend/internal/middleware"
	"weibo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 路由沿用原始页面路径：/user/*、/weibo/*、/comment/*
func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	router.Use(middleware.TraceMiddleware())

	// 公开路由：登陆与否都能看，带令牌时解析出身份
	router.GET("/", middleware.TryAuthMiddleware(cfg), c.weibo.Home)
	router.POST("/user/register", c.auth.Register)
	router.POST("/user/login", c.auth.Login)
	router.GET("/user/info", middleware.TryAuthMiddleware(cfg), c.user.Info)
	router.GET("/weibo/show", middleware.TryAuthMiddleware(cfg), c.weibo.Show)
	router.GET("/weibo/top10", c.weibo.Top10)
	router.GET("/comment/reply", c.comment.ReplyContext)

	// 受保护路由：必须携带有效身份
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware(cfg))
	{
		user.GET("/follow", c.user.Follow)
		user.GET("/unfollow", c.user.Unfollow)
		user.GET("/fans", c.user.Fans)
	}

	weibo := router.Group("/weibo")
	weibo.Use(middleware.AuthMiddleware(cfg))
	{
		weibo.POST("/post", c.weibo.Post)
		weibo.GET("/like", c.weibo.Like)
		weibo.GET("/dislike", c.weibo.Dislike)
		weibo.GET("/follow", c.weibo.FollowFeed)
	}

	comment := router.Group("/comment")
	comment.Use(middleware.AuthMiddleware(cfg))
	{
		comment.POST("/commit", c.comment.Commit)
		comment.POST("/reply", c.comment.Reply)
	}
}
