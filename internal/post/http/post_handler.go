// Package http provides HTTP handlers for post-related operations, including
// the paginated listing, search and image endpoints.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/internal/httputil"
	"blogapp/internal/post/domain"
	"blogapp/internal/post/http/dto"
	"blogapp/internal/post/usecase"
	"blogapp/internal/storage"
)

// Sorting defaults for the paginated post listing.
const (
	defaultSortBy  = "postId"
	defaultSortDir = "ASC"
)

// maxImageSize caps uploaded image payloads at 5 MiB.
const maxImageSize = 5 << 20

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUseCase  usecase.UseCase
	imageStorage storage.ImageStorage
	logger       *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUseCase usecase.UseCase, imageStorage storage.ImageStorage, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:  postUseCase,
		imageStorage: imageStorage,
		logger:       logger,
	}
}

// CreateHandler handles post creation under a user and category.
// POST /api/user/:userId/category/:categoryId/posts - Returns 201 Created with the created post.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	userID, err := parsePathID(c, "userId", "user")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	categoryID, err := parsePathID(c, "categoryId", "category")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, categoryID, dto.ToPostInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// UpdateHandler handles post update.
// PUT /api/posts/:postId - Returns 200 OK with the updated post.
func (h *PostHandler) UpdateHandler(c *gin.Context) {
	postID, err := parsePathID(c, "postId", "post")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), postID, dto.ToPostInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// GetHandler retrieves a post by ID.
// GET /api/posts/:postId - Returns 200 OK with the post.
func (h *PostHandler) GetHandler(c *gin.Context) {
	postID, err := parsePathID(c, "postId", "post")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// ListHandler retrieves a page of posts.
// GET /api/posts?pageNumber=&pageSize=&sortBy=&sortDir= - Returns 200 OK with the page envelope.
func (h *PostHandler) ListHandler(c *gin.Context) {
	pageNumber, pageSize, err := httputil.ParsePageParams(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	query := domain.PageQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     c.DefaultQuery("sortBy", defaultSortBy),
		SortDir:    domain.SortDirection(c.DefaultQuery("sortDir", defaultSortDir)),
	}

	page, err := h.postUseCase.ListPosts(c.Request.Context(), query)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostPageResponse(page))
}

// ListByUserHandler retrieves all posts owned by a user.
// GET /api/user/:userId/posts - Returns 200 OK with the post list.
func (h *PostHandler) ListByUserHandler(c *gin.Context) {
	userID, err := parsePathID(c, "userId", "user")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	posts, err := h.postUseCase.GetPostsByUser(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// ListByCategoryHandler retrieves all posts in a category.
// GET /api/category/:categoryId/posts - Returns 200 OK with the post list.
func (h *PostHandler) ListByCategoryHandler(c *gin.Context) {
	categoryID, err := parsePathID(c, "categoryId", "category")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	posts, err := h.postUseCase.GetPostsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// SearchHandler retrieves all posts matching a case-insensitive substring.
// GET /api/posts/search/:search - Returns 200 OK with the post list.
func (h *PostHandler) SearchHandler(c *gin.Context) {
	posts, err := h.postUseCase.SearchPosts(c.Request.Context(), c.Param("search"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// DeleteHandler removes a post by ID.
// DELETE /api/posts/:postId - Returns 200 OK with a deletion envelope.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	postID, err := parsePathID(c, "postId", "post")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.NewAPIResponse("Post is successfully Deleted", http.StatusOK))
}

// UploadImageHandler stores an image for an existing post and records its name.
// POST /api/posts/upload/image/:postId - Returns 200 OK with the updated post.
// The image is read from the "image" multipart form field.
func (h *PostHandler) UploadImageHandler(c *gin.Context) {
	postID, err := parsePathID(c, "postId", "post")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Resolve the post before touching storage so a missing post costs no writes.
	if _, err := h.postUseCase.GetPostByID(c.Request.Context(), postID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("image file is required"), h.logger)
		return
	}
	if fileHeader.Size > maxImageSize {
		httputil.HandleBadRequestGin(c, fmt.Errorf("image exceeds the %d byte limit", maxImageSize), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("failed to read image file"), h.logger)
		return
	}
	defer file.Close()

	imageName, err := h.imageStorage.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	post, err := h.postUseCase.SetPostImage(c.Request.Context(), postID, imageName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// ServeImageHandler streams a stored image.
// GET /api/posts/image/:imageName - Returns 200 OK with the image bytes.
func (h *PostHandler) ServeImageHandler(c *gin.Context) {
	imageName := c.Param("imageName")

	r, err := h.imageStorage.Open(c.Request.Context(), imageName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer r.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, r); err != nil {
		h.logger.Error("failed to stream image", slog.String("image_name", imageName), slog.Any("error", err))
	}
}

// parsePathID parses an integer path parameter, naming the entity on failure.
func parsePathID(c *gin.Context, param, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: must be an integer", entity)
	}
	return id, nil
}
