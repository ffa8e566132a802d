package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/internal/post/domain"
	"blogapp/internal/testutil"

	apperrors "blogapp/internal/errors"
)

func TestNewPostgreSQLPostRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLPostRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLPostRepository{}, repo)
}

func TestPostgreSQLPostRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID, categoryID := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-create")

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	post := &domain.Post{
		Title:      "Created Post",
		Content:    "post body",
		ImageName:  "default.png",
		UserID:     userID,
		CategoryID: categoryID,
	}

	err := repo.Create(ctx, post)
	require.NoError(t, err)
	assert.NotZero(t, post.ID, "database assigns the identifier")
	assert.False(t, post.AddedDate.IsZero(), "database assigns the added date")
	assert.False(t, post.UpdatedAt.IsZero())

	retrieved, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, retrieved.Title)
	assert.Equal(t, post.Content, retrieved.Content)
	assert.Equal(t, userID, retrieved.UserID)
	assert.Equal(t, categoryID, retrieved.CategoryID)
	assert.WithinDuration(t, post.AddedDate, retrieved.AddedDate, time.Second)
}

func TestPostgreSQLPostRepository_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "id 999999")
}

func TestPostgreSQLPostRepository_List(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID, categoryID := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-list")
	testutil.CreateTestPost(t, db, "postgres", "Alpha", userID, categoryID)
	testutil.CreateTestPost(t, db, "postgres", "Bravo", userID, categoryID)
	testutil.CreateTestPost(t, db, "postgres", "Charlie", userID, categoryID)

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	posts, err := repo.List(ctx, ListParams{Offset: 0, Limit: 2, SortColumn: "title", Desc: false})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Alpha", posts[0].Title)
	assert.Equal(t, "Bravo", posts[1].Title)

	// Descending order with an offset window
	posts, err = repo.List(ctx, ListParams{Offset: 1, Limit: 2, SortColumn: "title", Desc: true})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Bravo", posts[0].Title)
	assert.Equal(t, "Alpha", posts[1].Title)
}

func TestPostgreSQLPostRepository_GetByUserAndCategory(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID1, categoryID1 := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-scope-1")
	userID2, categoryID2 := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-scope-2")

	testutil.CreateTestPost(t, db, "postgres", "First Scoped", userID1, categoryID1)
	testutil.CreateTestPost(t, db, "postgres", "Second Scoped", userID1, categoryID2)
	testutil.CreateTestPost(t, db, "postgres", "Other User", userID2, categoryID2)

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	byUser, err := repo.GetByUser(ctx, userID1)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byCategory, err := repo.GetByCategory(ctx, categoryID2)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	empty, err := repo.GetByUser(ctx, userID2+1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostgreSQLPostRepository_Search(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID, categoryID := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-search")
	testutil.CreateTestPost(t, db, "postgres", "Gopher Tips", userID, categoryID)
	testutil.CreateTestPost(t, db, "postgres", "Unrelated", userID, categoryID)

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	// Case-insensitive substring match on title
	posts, err := repo.Search(ctx, "gopher")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Gopher Tips", posts[0].Title)

	// Content matches too; fixture posts share the same content
	posts, err = repo.Search(ctx, "TEST POST CONTENT")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.Search(ctx, "no-such-term")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostgreSQLPostRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID, categoryID := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-update")
	postID := testutil.CreateTestPost(t, db, "postgres", "Before Update", userID, categoryID)

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	post, err := repo.GetByID(ctx, postID)
	require.NoError(t, err)

	post.Title = "After Update"
	post.Content = "updated content"
	post.ImageName = "cover.jpg"
	err = repo.Update(ctx, post)
	require.NoError(t, err)

	retrieved, err := repo.GetByID(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "After Update", retrieved.Title)
	assert.Equal(t, "updated content", retrieved.Content)
	assert.Equal(t, "cover.jpg", retrieved.ImageName)

	// Missing post maps to not found
	missing := *post
	missing.ID = 999999
	err = repo.Update(ctx, &missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgreSQLPostRepository_Delete(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	userID, categoryID := testutil.CreateTestUserAndCategory(t, db, "postgres", "pg-post-delete")
	postID := testutil.CreateTestPost(t, db, "postgres", "Doomed Post", userID, categoryID)

	repo := NewPostgreSQLPostRepository(db)
	ctx := context.Background()

	err := repo.Delete(ctx, postID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, postID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, postID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
