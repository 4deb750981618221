package repository

import (
	"context"
	"fmt"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	group := &models.Group{Title: "Cats", Slug: "cats", Description: "About cats"}
	require.NoError(t, db.Create(group).Error)

	t.Run("Create and GetByID", func(t *testing.T) {
		post := &models.Post{Text: "First post", AuthorID: author.ID, GroupID: &group.ID}
		err := repo.Create(ctx, post)
		assert.NoError(t, err)
		assert.NotZero(t, post.ID)

		fetched, err := repo.GetByID(ctx, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "First post", fetched.Text)
		assert.Equal(t, "author", fetched.Author.Username)
		assert.Equal(t, "cats", fetched.Group.Slug)
		assert.Equal(t, 0, fetched.CommentsCount)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Error(t, err)
		assert.True(t, models.IsCode(err, "NOT_FOUND"))
	})

	t.Run("Update", func(t *testing.T) {
		post := &models.Post{Text: "Draft", AuthorID: author.ID}
		require.NoError(t, repo.Create(ctx, post))

		post.Text = "Edited"
		assert.NoError(t, repo.Update(ctx, post))

		fetched, err := repo.GetByID(ctx, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Edited", fetched.Text)
	})

	t.Run("Delete removes comments too", func(t *testing.T) {
		post := &models.Post{Text: "Doomed", AuthorID: author.ID}
		require.NoError(t, repo.Create(ctx, post))
		comment := &models.Comment{Text: "gone with it", PostID: post.ID, AuthorID: author.ID}
		require.NoError(t, db.Create(comment).Error)

		assert.NoError(t, repo.Delete(ctx, post.ID))

		_, err := repo.GetByID(ctx, post.ID)
		assert.Error(t, err)

		var count int64
		db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestPostRepositoryListing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "other")
	group := &models.Group{Title: "Rock", Slug: "rock", Description: "Rock bands"}
	require.NoError(t, db.Create(group).Error)

	for i := 0; i < 15; i++ {
		post := &models.Post{Text: fmt.Sprintf("post %d", i), AuthorID: author.ID}
		if i%2 == 0 {
			post.GroupID = &group.ID
		}
		require.NoError(t, repo.Create(ctx, post))
	}
	require.NoError(t, repo.Create(ctx, &models.Post{Text: "stray", AuthorID: other.ID}))

	t.Run("List orders newest first", func(t *testing.T) {
		posts, err := repo.List(ctx, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 10)
		// Equal timestamps fall back to ID, so the latest insert leads.
		assert.Equal(t, "stray", posts[0].Text)
		for i := 1; i < len(posts); i++ {
			assert.True(t, posts[i-1].ID > posts[i].ID)
		}
	})

	t.Run("List second page", func(t *testing.T) {
		posts, err := repo.List(ctx, 10, 10)
		assert.NoError(t, err)
		assert.Len(t, posts, 6)
	})

	t.Run("ListByGroup", func(t *testing.T) {
		posts, err := repo.ListByGroup(ctx, group.ID, 100, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 8)
		for _, p := range posts {
			assert.Equal(t, group.ID, *p.GroupID)
		}
	})

	t.Run("ListByAuthor", func(t *testing.T) {
		posts, err := repo.ListByAuthor(ctx, other.ID, 100, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "stray", posts[0].Text)
	})

	t.Run("Counts", func(t *testing.T) {
		total, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.EqualValues(t, 16, total)

		byGroup, err := repo.CountByGroup(ctx, group.ID)
		assert.NoError(t, err)
		assert.EqualValues(t, 8, byGroup)

		byAuthor, err := repo.CountByAuthor(ctx, author.ID)
		assert.NoError(t, err)
		assert.EqualValues(t, 15, byAuthor)
	})

	t.Run("CommentsCount computed", func(t *testing.T) {
		posts, err := repo.ListByAuthor(ctx, other.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)

		for i := 0; i < 3; i++ {
			c := &models.Comment{Text: "hi", PostID: posts[0].ID, AuthorID: author.ID}
			require.NoError(t, db.Create(c).Error)
		}

		refreshed, err := repo.GetByID(ctx, posts[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, 3, refreshed.CommentsCount)
	})
}

func TestPostRepositoryFollowingFeed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	ignored := createTestUser(t, db, "ignoredauthor")

	require.NoError(t, repo.Create(ctx, &models.Post{Text: "wanted", AuthorID: followed.ID}))
	require.NoError(t, repo.Create(ctx, &models.Post{Text: "unwanted", AuthorID: ignored.ID}))
	require.NoError(t, followRepo.Create(ctx, reader.ID, followed.ID))

	t.Run("only followed authors appear", func(t *testing.T) {
		posts, err := repo.ListFollowing(ctx, reader.ID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "wanted", posts[0].Text)

		count, err := repo.CountFollowing(ctx, reader.ID)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("empty for non-follower", func(t *testing.T) {
		posts, err := repo.ListFollowing(ctx, ignored.ID, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("new post shows up without any extra action", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Post{Text: "fresh", AuthorID: followed.ID}))

		posts, err := repo.ListFollowing(ctx, reader.ID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, "fresh", posts[0].Text)
	})

	t.Run("unfollow empties the feed", func(t *testing.T) {
		require.NoError(t, followRepo.Delete(ctx, reader.ID, followed.ID))

		posts, err := repo.ListFollowing(ctx, reader.ID, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})
}
