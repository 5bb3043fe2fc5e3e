package api

import (
	"Clipstream/internal/api/middleware"
	"Clipstream/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		relationGroup := apiGroup.Group("/user-relation")
		{
			relationGroup.Use(middleware.AuthMiddleware())
			{
				relationGroup.POST("/follow/:user_id", group.FollowHandler.Follow)
				relationGroup.DELETE("/follow/:user_id", group.FollowHandler.Unfollow)
				relationGroup.GET("/followers/count", group.FollowHandler.GetFollowerCount)
				relationGroup.GET("/followings/count", group.FollowHandler.GetFollowingCount)
			}
		}

		videoGroup := apiGroup.Group("/video")
		{
			videoGroup.GET("/feed", group.VideoHandler.GetFeed)
			videoGroup.GET("/comments/:video_id", group.CommentHandler.List)

			authGroup := videoGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/upload", group.VideoHandler.Upload)
				authGroup.POST("/like/:video_id", group.VideoHandler.ToggleLike)
				authGroup.POST("/comment", group.CommentHandler.Create)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload-url", group.MediaHandler.PresignUpload)
		}

		agentGroup := apiGroup.Group("/agent")
		{
			agentGroup.Use(middleware.AuthMiddleware())
			agentGroup.POST("/chat", group.AgentHandler.Chat)
		}

		// WebSocket 通过 query token 鉴权
		apiGroup.GET("/chat", group.WSHandler.Connect)
	}

	return r
}
