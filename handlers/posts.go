package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sociofeed/feed"
	"sociofeed/store"
)

// Handler wires the HTTP surface to the feed service and the user store.
type Handler struct {
	svc   *feed.Service
	users store.UserStore
}

func NewHandler(svc *feed.Service, users store.UserStore) *Handler {
	return &Handler{svc: svc, users: users}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

type createPostRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Description string `json:"description" binding:"required"`
	PicturePath string `json:"picturePath"`
}

// CreatePost stores a new post and answers with the refreshed global feed,
// newest first, which is what existing clients expect from this route.
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := h.svc.CreatePost(ctx, req.UserID, req.Description, req.PicturePath); err != nil {
		respondPostError(c, err, http.StatusConflict)
		return
	}

	posts, err := h.svc.Feed(ctx, "")
	if err != nil {
		log.Printf("CreatePost feed error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusCreated, posts)
}

// GetFeedPosts returns the global feed, newest first.
func (h *Handler) GetFeedPosts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := h.svc.Feed(ctx, "")
	if err != nil {
		log.Printf("GetFeedPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetUserPosts returns one author's posts, newest first.
func (h *Handler) GetUserPosts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := h.svc.Feed(ctx, c.Param("id"))
	if err != nil {
		respondPostError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type likeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LikePost flips the caller's like on the post and returns the updated post.
func (h *Handler) LikePost(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	post, err := h.svc.ToggleLike(ctx, c.Param("id"), req.UserID)
	if err != nil {
		respondPostError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, post)
}

type commentRequest struct {
	UserID      string `json:"userId" binding:"required"`
	CommentText string `json:"commentText" binding:"required"`
}

// CommentPost appends a comment to the post and returns the updated post.
func (h *Handler) CommentPost(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	post, err := h.svc.AddComment(ctx, c.Param("id"), req.UserID, req.CommentText)
	if err != nil {
		respondPostError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, post)
}

// respondPostError maps the service error taxonomy onto HTTP statuses.
// faultStatus is used for store faults; create keeps the 409 existing
// clients see, everything else answers 500.
func respondPostError(c *gin.Context, err error, faultStatus int) {
	switch {
	case errors.Is(err, feed.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("post handler error: %v", err)
		c.JSON(faultStatus, gin.H{"error": "Database error"})
	}
}
