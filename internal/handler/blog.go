package handler

import (
	"net/http"

	"github.com/bloghub/bloghub/internal/middleware"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/pagination"
	"github.com/bloghub/bloghub/internal/service"
	"github.com/gin-gonic/gin"
)

// Author-facing blog endpoints. Role gating happens in middleware; the
// delete path additionally checks resource ownership in the service.
type BlogHandler struct {
	service *service.BlogService
}

func NewBlogHandler(service *service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// Lists the calling author's own blogs, paginated.
func (h *BlogHandler) ListOwn(c *gin.Context) {
	user := middleware.UserFrom(c)
	page := pagination.Page(c)

	ctx := c.Request.Context()
	blogs, total, err := h.service.ListOwn(ctx, user.ID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Response(c, total, page, pagination.DefaultPageSize, blogs))
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req struct {
		BlogData struct {
			Title   string `json:"title" binding:"required"`
			Content string `json:"content" binding:"required"`
			Status  int    `json:"status"`
		} `json:"blog_data" binding:"required"`
		Category []string `json:"category"`
		Tags     []string `json:"tags"`
		Author   struct {
			AuthorID string `json:"author_id" binding:"required"`
		} `json:"author" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateBlogInput{
		Title:   req.BlogData.Title,
		Content: req.BlogData.Content,
		Status:  req.BlogData.Status,
	}

	ctx := c.Request.Context()
	blog, err := h.service.Create(ctx, req.Author.AuthorID, input, req.Category, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog created successfully",
		"data": gin.H{
			"id":     blog.ID,
			"title":  blog.Title,
			"slug":   blog.Slug,
			"status": blog.Status,
		},
	})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	var req struct {
		BlogID string `json:"blog_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Delete(ctx, req.BlogID, middleware.UserFrom(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog with id " + req.BlogID + " deleted successfully",
	})
}

func (h *BlogHandler) ChangeStatus(c *gin.Context) {
	var req struct {
		BlogID string `json:"blog_id" binding:"required"`
		Status *int   `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.ChangeStatus(ctx, req.BlogID, *req.Status); err != nil {
		respondError(c, err)
		return
	}

	statusLabel := "Draft"
	if *req.Status == models.StatusPublished {
		statusLabel = "Published"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog with id " + req.BlogID + " status changed to " + statusLabel,
	})
}
