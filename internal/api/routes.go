package api

import (
	"net/http"

	"proofit/internal/repository"
	"proofit/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	feedService service.FeedService,
	publishService service.PublishService,
	socialService service.SocialService,
	postRepo repository.PostRepository,
) {

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	feedHandler := NewFeedHandler(feedService)
	postHandler := NewPostHandler(publishService, feedService, postRepo)
	socialHandler := NewSocialHandler(socialService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile Routes ---
		protected.GET("/me", profileHandler.Me)
		protected.PATCH("/me", profileHandler.Update)
		protected.PUT("/me/avatar", profileHandler.UploadAvatar)
		profileGroup := protected.Group("/profiles")
		{
			// GET /api/v1/profiles?q=... - username/display-name search
			profileGroup.GET("", profileHandler.Search)
			profileGroup.GET("/:username", profileHandler.GetByUsername)
		}

		// --- Feed ---
		protected.GET("/feed", feedHandler.Feed)

		// --- Post Routes ---
		postGroup := protected.Group("/posts")
		{
			postGroup.POST("", postHandler.Publish)
			postGroup.GET("/:postId", postHandler.GetPost)
			postGroup.DELETE("/:postId", postHandler.DeletePost)

			postGroup.POST("/:postId/like", socialHandler.Like)
			postGroup.DELETE("/:postId/like", socialHandler.Unlike)

			postGroup.GET("/:postId/comments", socialHandler.Comments)
			postGroup.POST("/:postId/comments", socialHandler.AddComment)
			postGroup.DELETE("/:postId/comments/:commentId", socialHandler.DeleteComment)
		}

		// --- User Routes ---
		userGroup := protected.Group("/users")
		{
			userGroup.GET("/:userId/posts", postHandler.UserPosts)
			userGroup.POST("/:userId/follow", socialHandler.Follow)
			userGroup.DELETE("/:userId/follow", socialHandler.Unfollow)
		}
	}
}
