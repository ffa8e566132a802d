// Package usecase implements the comment business logic.
package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"blogapp/internal/comment/domain"
	postdomain "blogapp/internal/post/domain"

	appValidation "blogapp/internal/validation"
)

// CommentInput contains the input data for comment creation
type CommentInput struct {
	Content string `json:"content"`
}

// UseCase defines the interface for comment business logic operations
type UseCase interface {
	CreateComment(ctx context.Context, postID int64, input CommentInput) (*domain.Comment, error)
	GetCommentsByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// CommentRepository interface defines comment repository operations
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	GetByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// PostReader resolves the post a comment is attached to
type PostReader interface {
	GetByID(ctx context.Context, id int64) (*postdomain.Post, error)
}

// CommentUseCase handles comment-related business logic
type CommentUseCase struct {
	commentRepo CommentRepository
	postRepo    PostReader
}

// NewCommentUseCase creates a new CommentUseCase
func NewCommentUseCase(commentRepo CommentRepository, postRepo PostReader) UseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (uc *CommentUseCase) validateCommentInput(input CommentInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
			validation.Length(1, 2000).Error("content must be between 1 and 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateComment attaches a new comment to an existing post.
// Fails with a not-found error if the post does not exist.
func (uc *CommentUseCase) CreateComment(ctx context.Context, postID int64, input CommentInput) (*domain.Comment, error) {
	if err := uc.validateCommentInput(input); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content: input.Content,
		PostID:  post.ID,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// GetCommentsByPost retrieves all comments attached to the given post.
// Fails with a not-found error if the post does not exist.
func (uc *CommentUseCase) GetCommentsByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// DeleteComment removes a comment by ID.
// Fails with a not-found error if the comment does not exist.
func (uc *CommentUseCase) DeleteComment(ctx context.Context, commentID int64) error {
	if _, err := uc.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}
	return uc.commentRepo.Delete(ctx, commentID)
}
