package dto

import (
	"time"

	"blogapp/internal/post/domain"
)

// PostResponse represents the API response for a post
type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageName  string    `json:"image_name"`
	AddedDate  time.Time `json:"added_date"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostPageResponse represents one page of the post listing
type PostPageResponse struct {
	Content       []PostResponse `json:"content"`
	PageNumber    int            `json:"page_number"`
	PageSize      int            `json:"page_size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
	LastPage      bool           `json:"last_page"`
}

// ToPostResponse converts a domain Post model to a PostResponse DTO
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		ImageName:  post.ImageName,
		AddedDate:  post.AddedDate,
		UserID:     post.UserID,
		CategoryID: post.CategoryID,
		UpdatedAt:  post.UpdatedAt,
	}
}

// ToPostResponses converts a list of domain posts to response DTOs
func ToPostResponses(posts []*domain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, ToPostResponse(post))
	}
	return responses
}

// ToPostPageResponse converts a domain page to its response envelope
func ToPostPageResponse(page *domain.Page) PostPageResponse {
	return PostPageResponse{
		Content:       ToPostResponses(page.Content),
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		LastPage:      page.LastPage,
	}
}
