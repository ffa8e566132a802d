// Package http provides HTTP handlers for category-related operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/internal/category/http/dto"
	"blogapp/internal/category/usecase"
	"blogapp/internal/httputil"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUseCase usecase.UseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// CreateHandler handles category creation.
// POST /api/categories - Returns 201 Created with the created category.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request.Context(), dto.ToCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateHandler handles category update.
// PUT /api/categories/:categoryId - Returns 200 OK with the updated category.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request.Context(), categoryID, dto.ToCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// GetHandler retrieves a category by ID.
// GET /api/categories/:categoryId - Returns 200 OK with the category.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// ListHandler retrieves all categories.
// GET /api/categories - Returns 200 OK with the category list.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	categories, err := h.categoryUseCase.GetAllCategories(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// DeleteHandler removes a category by ID.
// DELETE /api/categories/:categoryId - Returns 200 OK with a deletion envelope.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.categoryUseCase.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.NewAPIResponse("Category is deleted successfully", http.StatusOK))
}

// parseCategoryID parses the categoryId path parameter.
func parseCategoryID(c *gin.Context) (int64, error) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid category ID: must be an integer")
	}
	return categoryID, nil
}
