package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sociofeed/handlers"
)

func SetupRouter(h *handlers.Handler) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	posts := router.Group("/posts")
	posts.POST("", h.CreatePost)
	posts.GET("", h.GetFeedPosts)
	posts.GET("/:id/posts", h.GetUserPosts)
	posts.PATCH("/:id/like", h.LikePost)
	posts.PATCH("/:id/comment", h.CommentPost)

	users := router.Group("/users")
	users.GET("/:id", h.GetUser)
	users.GET("/:id/friends", h.GetUserFriends)
	users.PATCH("/:id/:friendId", h.AddRemoveFriend)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
