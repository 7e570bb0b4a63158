package handler

import (
	"net/http"

	"github.com/bloghub/bloghub/internal/pagination"
	"github.com/bloghub/bloghub/internal/service"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *service.CategoryService
}

func NewCategoryHandler(service *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Lists categories with their blog counts, paginated. Open to any
// authenticated role.
func (h *CategoryHandler) List(c *gin.Context) {
	page := pagination.Page(c)

	ctx := c.Request.Context()
	categories, total, err := h.service.List(ctx, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Response(c, total, page, pagination.DefaultPageSize, categories))
}

// Creates a category. Admin only.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	category, err := h.service.Create(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created successfully",
		"data": gin.H{
			"id":   category.ID,
			"name": category.Name,
			"slug": category.Slug,
		},
	})
}

// Deletes a category by the category_id query param. Admin only.
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
		return
	}

	ctx := c.Request.Context()
	name, err := h.service.Delete(ctx, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category " + name + " is deleted",
	})
}
