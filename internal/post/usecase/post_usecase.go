// Package usecase implements the post business logic, including pagination,
// sorting and full-text style search over titles and contents.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	categorydomain "blogapp/internal/category/domain"
	"blogapp/internal/database"
	"blogapp/internal/post/domain"
	"blogapp/internal/post/repository"
	userdomain "blogapp/internal/user/domain"

	apperrors "blogapp/internal/errors"
	appValidation "blogapp/internal/validation"
)

// PostInput contains the input data for post creation and update
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UseCase defines the interface for post business logic operations
type UseCase interface {
	CreatePost(ctx context.Context, userID, categoryID int64, input PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, postID int64, input PostInput) (*domain.Post, error)
	GetPostByID(ctx context.Context, postID int64) (*domain.Post, error)
	GetPostsByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	GetPostsByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error)
	ListPosts(ctx context.Context, query domain.PageQuery) (*domain.Page, error)
	SearchPosts(ctx context.Context, search string) ([]*domain.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	SetPostImage(ctx context.Context, postID int64, imageName string) (*domain.Post, error)
}

// PostRepository interface defines post repository operations
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error)
	List(ctx context.Context, params repository.ListParams) ([]*domain.Post, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, search string) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
}

// UserReader resolves post owners
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*userdomain.User, error)
}

// CategoryReader resolves post categories
type CategoryReader interface {
	GetByID(ctx context.Context, id int64) (*categorydomain.Category, error)
}

// sortColumns maps the accepted sort field names to database columns.
// "postId" is the canonical identifier field name exposed by the API.
var sortColumns = map[string]string{
	"postId":    "id",
	"id":        "id",
	"title":     "title",
	"addedDate": "added_date",
}

// defaultImageName is assigned to posts created without an uploaded image.
const defaultImageName = "default.png"

// PostUseCase handles post-related business logic
type PostUseCase struct {
	postRepo     PostRepository
	userRepo     UserReader
	categoryRepo CategoryReader
	txManager    database.TxManager
}

// NewPostUseCase creates a new PostUseCase
func NewPostUseCase(
	postRepo PostRepository,
	userRepo UserReader,
	categoryRepo CategoryReader,
	txManager database.TxManager,
) UseCase {
	return &PostUseCase{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
	}
}

func (uc *PostUseCase) validatePostInput(input PostInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreatePost creates a post owned by the given user in the given category.
// Both parents are resolved inside a transaction so a concurrent delete cannot
// leave a post pointing at a missing owner.
func (uc *PostUseCase) CreatePost(ctx context.Context, userID, categoryID int64, input PostInput) (*domain.Post, error) {
	if err := uc.validatePostInput(input); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		ImageName: defaultImageName,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		category, err := uc.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return err
		}

		post.UserID = user.ID
		post.CategoryID = category.ID
		return uc.postRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites the title and content of an existing post.
// Fails with a not-found error if the post does not exist.
func (uc *PostUseCase) UpdatePost(ctx context.Context, postID int64, input PostInput) (*domain.Post, error) {
	if err := uc.validatePostInput(input); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetPostByID retrieves a post by ID
func (uc *PostUseCase) GetPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	return uc.postRepo.GetByID(ctx, postID)
}

// GetPostsByUser retrieves all posts owned by the given user.
// Fails with a not-found error if the user does not exist.
func (uc *PostUseCase) GetPostsByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.postRepo.GetByUser(ctx, userID)
}

// GetPostsByCategory retrieves all posts in the given category.
// Fails with a not-found error if the category does not exist.
func (uc *PostUseCase) GetPostsByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return uc.postRepo.GetByCategory(ctx, categoryID)
}

// ListPosts retrieves a page of posts, sorted as requested.
func (uc *PostUseCase) ListPosts(ctx context.Context, query domain.PageQuery) (*domain.Page, error) {
	column, ok := sortColumns[query.SortBy]
	if !ok {
		return nil, apperrors.Wrapf(domain.ErrInvalidSortField, "sortBy %q", query.SortBy)
	}

	var desc bool
	switch domain.SortDirection(strings.ToUpper(string(query.SortDir))) {
	case domain.SortAsc, "":
		desc = false
	case domain.SortDesc:
		desc = true
	default:
		return nil, apperrors.Wrapf(domain.ErrInvalidSortDirection, "sortDir %q", query.SortDir)
	}

	total, err := uc.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.List(ctx, repository.ListParams{
		Offset:     query.PageNumber * query.PageSize,
		Limit:      query.PageSize,
		SortColumn: column,
		Desc:       desc,
	})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}

	totalPages := int(total) / query.PageSize
	if int(total)%query.PageSize != 0 {
		totalPages++
	}

	return &domain.Page{
		Content:       posts,
		PageNumber:    query.PageNumber,
		PageSize:      query.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      query.PageNumber >= totalPages-1,
	}, nil
}

// SearchPosts retrieves all posts whose title or content contains the search
// term, ignoring case. The term is trimmed before matching.
func (uc *PostUseCase) SearchPosts(ctx context.Context, search string) ([]*domain.Post, error) {
	posts, err := uc.postRepo.Search(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

// DeletePost removes a post by ID.
// Fails with a not-found error if the post does not exist.
func (uc *PostUseCase) DeletePost(ctx context.Context, postID int64) error {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return uc.postRepo.Delete(ctx, postID)
}

// SetPostImage records the stored image file name on an existing post.
func (uc *PostUseCase) SetPostImage(ctx context.Context, postID int64, imageName string) (*domain.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.ImageName = imageName

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}
