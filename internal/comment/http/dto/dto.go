// Package dto provides data transfer objects for the comment HTTP layer.
package dto

import (
	"time"

	"blogapp/internal/comment/domain"
	"blogapp/internal/comment/usecase"
)

// CommentRequest represents the API request for comment creation
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents the API response for a comment
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentInput converts a CommentRequest DTO to a use case input
func ToCommentInput(req CommentRequest) usecase.CommentInput {
	return usecase.CommentInput{
		Content: req.Content,
	}
}

// ToCommentResponse converts a domain Comment model to a CommentResponse DTO
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentResponses converts a list of domain comments to response DTOs
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, ToCommentResponse(comment))
	}
	return responses
}
