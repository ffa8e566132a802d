// Package http provides HTTP handlers for comment-related operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/internal/comment/http/dto"
	"blogapp/internal/comment/usecase"
	"blogapp/internal/httputil"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentUseCase usecase.UseCase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// CreateHandler attaches a comment to a post.
// POST /api/post/:postId/comments - Returns 200 OK with the created comment.
func (h *CommentHandler) CreateHandler(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), postID, dto.ToCommentInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// ListByPostHandler retrieves all comments attached to a post.
// GET /api/post/:postId/comments - Returns 200 OK with the comment list.
func (h *CommentHandler) ListByPostHandler(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	comments, err := h.commentUseCase.GetCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// DeleteHandler removes a comment by ID.
// DELETE /api/comments/:commentId - Returns 200 OK with a deletion envelope.
func (h *CommentHandler) DeleteHandler(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid comment ID: must be an integer"), h.logger)
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), commentID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.NewAPIResponse("Comment is deleted successfully", http.StatusOK))
}

// parsePostID parses the postId path parameter.
func parsePostID(c *gin.Context) (int64, error) {
	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post ID: must be an integer")
	}
	return postID, nil
}
