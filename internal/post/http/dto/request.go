// Package dto provides data transfer objects for the post HTTP layer.
package dto

import (
	"blogapp/internal/post/usecase"
)

// PostRequest represents the API request for post creation and update
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToPostInput converts a PostRequest DTO to a use case input
func ToPostInput(req PostRequest) usecase.PostInput {
	return usecase.PostInput{
		Title:   req.Title,
		Content: req.Content,
	}
}
