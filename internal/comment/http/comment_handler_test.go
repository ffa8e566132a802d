package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapp/internal/comment/domain"
	"blogapp/internal/comment/http/dto"
	"blogapp/internal/comment/http/mocks"
	"blogapp/internal/comment/usecase"
	"blogapp/internal/httputil"

	apperrors "blogapp/internal/errors"
)

// setupCommentRouter mounts the comment handler on a test router.
func setupCommentRouter(t *testing.T) (*gin.Engine, *mocks.MockCommentUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(mocks.MockCommentUseCase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewCommentHandler(mockUseCase, logger)

	router := gin.New()
	router.POST("/api/post/:postId/comments", handler.CreateHandler)
	router.GET("/api/post/:postId/comments", handler.ListByPostHandler)
	router.DELETE("/api/comments/:commentId", handler.DeleteHandler)

	return router, mockUseCase
}

func testComment() *domain.Comment {
	return &domain.Comment{
		ID:        1,
		Content:   "Nice post",
		PostID:    7,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCommentHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("CreateComment", mock.Anything, int64(7), usecase.CommentInput{Content: "Nice post"}).
			Return(testComment(), nil).Once()

		body, _ := json.Marshal(dto.CommentRequest{Content: "Nice post"})
		req := httptest.NewRequest(http.MethodPost, "/api/post/7/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, int64(7), response.PostID)
		assert.Equal(t, "Nice post", response.Content)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("CreateComment", mock.Anything, int64(42), mock.AnythingOfType("usecase.CommentInput")).
			Return(nil, apperrors.Wrapf(apperrors.ErrNotFound, "post id %d", 42)).Once()

		body, _ := json.Marshal(dto.CommentRequest{Content: "Nice post"})
		req := httptest.NewRequest(http.MethodPost, "/api/post/42/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidPostID", func(t *testing.T) {
		router, _ := setupCommentRouter(t)

		body, _ := json.Marshal(dto.CommentRequest{Content: "Nice post"})
		req := httptest.NewRequest(http.MethodPost, "/api/post/abc/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		router, _ := setupCommentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/post/7/comments", bytes.NewReader([]byte("{invalid")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_ListByPostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("GetCommentsByPost", mock.Anything, int64(7)).
			Return([]*domain.Comment{testComment()}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/post/7/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []dto.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 1)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("GetCommentsByPost", mock.Anything, int64(42)).
			Return(nil, apperrors.Wrapf(apperrors.ErrNotFound, "post id %d", 42)).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/post/42/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("DeleteComment", mock.Anything, int64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/comments/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response httputil.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Comment is deleted successfully", response.Message)
		assert.True(t, response.Success)
		assert.Equal(t, http.StatusOK, response.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockUseCase := setupCommentRouter(t)

		mockUseCase.On("DeleteComment", mock.Anything, int64(42)).
			Return(apperrors.Wrapf(domain.ErrCommentNotFound, "id %d", 42)).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/comments/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		router, _ := setupCommentRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/comments/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
