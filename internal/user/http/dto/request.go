// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"blogapp/internal/user/usecase"
)

// UserRequest represents the API request for user creation and update
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	About    string `json:"about"`
}

// ToUserInput converts a UserRequest DTO to a use case input
func ToUserInput(req UserRequest) usecase.UserInput {
	return usecase.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		About:    req.About,
	}
}
