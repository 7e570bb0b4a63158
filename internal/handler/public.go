package handler

import (
	"net/http"

	"github.com/bloghub/bloghub/internal/service"
	"github.com/gin-gonic/gin"
)

// Public read endpoints, throttled per tier in middleware.
type PublicBlogHandler struct {
	service *service.BlogService
}

func NewPublicBlogHandler(service *service.BlogService) *PublicBlogHandler {
	return &PublicBlogHandler{service: service}
}

// Returns every blog, newest first, without pagination.
func (h *PublicBlogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	blogs, err := h.service.ListPublic(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// Returns one blog's full detail by slug.
func (h *PublicBlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx := c.Request.Context()
	blog, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blog})
}
