// Package dto provides data transfer objects for the category HTTP layer.
package dto

import (
	"time"

	"blogapp/internal/category/domain"
	"blogapp/internal/category/usecase"
)

// CategoryRequest represents the API request for category creation and update
type CategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryResponse represents the API response for a category
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryInput converts a CategoryRequest DTO to a use case input
func ToCategoryInput(req CategoryRequest) usecase.CategoryInput {
	return usecase.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
	}
}

// ToCategoryResponse converts a domain Category model to a CategoryResponse DTO
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToCategoryResponses converts a list of domain categories to response DTOs
func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, ToCategoryResponse(category))
	}
	return responses
}
