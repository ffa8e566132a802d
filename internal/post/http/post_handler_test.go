package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapp/internal/httputil"
	"blogapp/internal/post/domain"
	"blogapp/internal/post/http/dto"
	"blogapp/internal/post/http/mocks"
	"blogapp/internal/post/usecase"
	storageMocks "blogapp/internal/storage/mocks"

	apperrors "blogapp/internal/errors"
)

// setupPostRouter mounts the post handler on a test router.
func setupPostRouter(t *testing.T) (*gin.Engine, *mocks.MockPostUseCase, *storageMocks.MockImageStorage) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(mocks.MockPostUseCase)
	mockStorage := new(storageMocks.MockImageStorage)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewPostHandler(mockUseCase, mockStorage, logger)

	router := gin.New()
	router.POST("/api/user/:userId/category/:categoryId/posts", handler.CreateHandler)
	router.GET("/api/user/:userId/posts", handler.ListByUserHandler)
	router.GET("/api/category/:categoryId/posts", handler.ListByCategoryHandler)
	router.GET("/api/posts", handler.ListHandler)
	router.GET("/api/posts/search/:search", handler.SearchHandler)
	router.GET("/api/posts/:postId", handler.GetHandler)
	router.PUT("/api/posts/:postId", handler.UpdateHandler)
	router.DELETE("/api/posts/:postId", handler.DeleteHandler)
	router.POST("/api/posts/upload/image/:postId", handler.UploadImageHandler)
	router.GET("/api/posts/image/:imageName", handler.ServeImageHandler)

	return router, mockUseCase, mockStorage
}

func testPost() *domain.Post {
	return &domain.Post{
		ID:         1,
		Title:      "First Post",
		Content:    "Hello world",
		ImageName:  "default.png",
		AddedDate:  time.Now().UTC(),
		UserID:     1,
		CategoryID: 2,
		UpdatedAt:  time.Now().UTC(),
	}
}

func TestPostHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase, _ := setupPostRouter(t)

		mockUseCase.On("CreatePost", mock.Anything, int64(1), int64(2), usecase.PostInput{
			Title:   "First Post",
			Content: "Hello world",
		}).Return(testPost(), nil).Once()

		body, _ := json.Marshal(dto.PostRequest{Title: "First Post", Content: "Hello world"})
		req := httptest.NewRequest(http.MethodPost, "/api/user/1/category/2/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, int64(1), response.UserID)
		assert.Equal(t, int64(2), response.CategoryID)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		router, mockUseCase, _ := setupPostRouter(t)

		mockUseCase.On("CreatePost", mock.Anything, int64(42), int64(2), mock.AnythingOfType("usecase.PostInput")).
			Return(nil, apperrors.Wrapf(apperrors.ErrNotFound, "user id %d", 42)).Once()

		body, _ := json.Marshal(dto.PostRequest{Title: "First Post", Content: "Hello world"})
		req := httptest.NewRequest(http.MethodPost, "/api/user/42/category/2/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidUserID", func(t *testing.T) {
		router, _, _ := setupPostRouter(t)

		body, _ := json.Marshal(dto.PostRequest{Title: "First Post", Content: "Hello world"})
		req := httptest.NewRequest(http.MethodPost, "/api/user/abc/category/2/posts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_ListHandler(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		router, mockUseCase, _ := setupPostRouter(t)

		mockUseCase.On("ListPosts", mock.Anything, domain.PageQuery{
			PageNumber: 0,
			PageSize:   10,
			SortBy:     "postId",
			SortDir:    domain.SortAsc,
		}).Return(&domain.Page{
			Content:       []*domain.Post{testPost()},
			PageNumber:    0,
			PageSize:      10,
			TotalElements: 1,
			TotalPages:    1,
			LastPage:      true,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PostPageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Content, 1)
		assert.Equal(t, int64(1), response.TotalElements)
		assert.Equal(t, 1, response.TotalPages)
		assert.True(t, response.LastPage)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("ExplicitParamsForwarded", func(t *testing.T) {
		router, mockUseCase, _ := setupPostRouter(t)

		mockUseCase.On("ListPosts", mock.Anything, domain.PageQuery{
			PageNumber: 2,
			PageSize:   5,
			SortBy:     "title",
			SortDir:    domain.SortDirection("DESC"),
		}).Return(&domain.Page{
			Content:    []*domain.Post{},
			PageNumber: 2,
			PageSize:   5,
			TotalPages: 3,
		}, nil).Once()

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/posts?pageNumber=2&pageSize=5&sortBy=title&sortDir=DESC",
			nil,
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("InvalidPageSize", func(t *testing.T) {
		router, _, _ := setupPostRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/posts?pageSize=0", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidSortField", func(t *testing.T) {
		router, mockUseCase, _ := setupPostRouter(t)

		mockUseCase.On("ListPosts", mock.Anything, mock.AnythingOfType("domain.PageQuery")).
			Return(nil, apperrors.Wrapf(domain.ErrInvalidSortField, "sortBy %q", "password")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts?sortBy=password", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostHandler_SearchHandler(t *testing.T) {
	router, mockUseCase, _ := setupPostRouter(t)

	mockUseCase.On("SearchPosts", mock.Anything, "hello").
		Return([]*domain.Post{testPost()}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/posts/search/hello", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
}

func TestPostHandler_ListByUserHandler(t *testing.T) {
	router, mockUseCase, _ := setupPostRouter(t)

	mockUseCase.On("GetPostsByUser", mock.Anything, int64(1)).
		Return([]*domain.Post{testPost()}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/user/1/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostHandler_ListByCategoryHandler(t *testing.T) {
	router, mockUseCase, _ := setupPostRouter(t)

	mockUseCase.On("GetPostsByCategory", mock.Anything, int64(2)).
		Return([]*domain.Post{testPost()}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/category/2/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostHandler_DeleteHandler(t *testing.T) {
	router, mockUseCase, _ := setupPostRouter(t)

	mockUseCase.On("DeletePost", mock.Anything, int64(1)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response httputil.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Post is successfully Deleted", response.Message)
	assert.True(t, response.Success)
}

func TestPostHandler_UploadImageHandler(t *testing.T) {
	newImageRequest := func(t *testing.T, field string) *http.Request {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, "photo.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte{0xff, 0xd8, 0xff})
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/posts/upload/image/1", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	t.Run("Success", func(t *testing.T) {
		router, mockUseCase, mockStorage := setupPostRouter(t)

		mockUseCase.On("GetPostByID", mock.Anything, int64(1)).Return(testPost(), nil).Once()
		mockStorage.On("Save", mock.Anything, "photo.jpg", mock.Anything).
			Return("generated.jpg", nil).Once()

		updated := testPost()
		updated.ImageName = "generated.jpg"
		mockUseCase.On("SetPostImage", mock.Anything, int64(1), "generated.jpg").
			Return(updated, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageRequest(t, "image"))

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "generated.jpg", response.ImageName)
		mockStorage.AssertExpectations(t)
	})

	t.Run("MissingImageField", func(t *testing.T) {
		router, mockUseCase, mockStorage := setupPostRouter(t)

		mockUseCase.On("GetPostByID", mock.Anything, int64(1)).Return(testPost(), nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageRequest(t, "file"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PostNotFound_NoStorageWrite", func(t *testing.T) {
		router, mockUseCase, mockStorage := setupPostRouter(t)

		mockUseCase.On("GetPostByID", mock.Anything, int64(1)).
			Return(nil, apperrors.Wrapf(domain.ErrPostNotFound, "id %d", 1)).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageRequest(t, "image"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostHandler_ServeImageHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, _, mockStorage := setupPostRouter(t)

		payload := []byte{0xff, 0xd8, 0xff, 0x01}
		mockStorage.On("Open", mock.Anything, "generated.jpg").
			Return(io.NopCloser(bytes.NewReader(payload)), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts/image/generated.jpg", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, payload, w.Body.Bytes())
	})

	t.Run("NotFound", func(t *testing.T) {
		router, _, mockStorage := setupPostRouter(t)

		mockStorage.On("Open", mock.Anything, "missing.jpg").
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "image not found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts/image/missing.jpg", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
