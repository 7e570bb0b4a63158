package handler

import (
	"net/http"

	"github.com/bloghub/bloghub/internal/middleware"
	"github.com/bloghub/bloghub/internal/service"
	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	service *service.SocialService
}

func NewSocialHandler(service *service.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

// Likes a blog on behalf of the calling user; liking twice is a no-op.
func (h *SocialHandler) LikeBlog(c *gin.Context) {
	var req struct {
		BlogID string `json:"blog_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.LikeBlog(ctx, middleware.UserFrom(c), req.BlogID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog liked"})
}

// Follows an author on behalf of the calling user.
func (h *SocialHandler) FollowAuthor(c *gin.Context) {
	var req struct {
		AuthorID string `json:"author_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.FollowAuthor(ctx, middleware.UserFrom(c), req.AuthorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "author followed"})
}
