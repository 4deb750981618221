package service

import (
	"context"
	"testing"

	"yatube/internal/models"
	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowServiceSetFollowing(t *testing.T) {
	db := newServiceDB(t)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	reader := newServiceUser(t, db, "reader")
	author := newServiceUser(t, db, "author")

	t.Run("follow then check", func(t *testing.T) {
		assert.NoError(t, svc.SetFollowing(ctx, reader.ID, "author", true))

		following, err := svc.IsFollowing(ctx, reader.ID, author.ID)
		assert.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("follow twice stays a single edge", func(t *testing.T) {
		assert.NoError(t, svc.SetFollowing(ctx, reader.ID, "author", true))

		var count int64
		db.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, author.ID).
			Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("self follow refused", func(t *testing.T) {
		err := svc.SetFollowing(ctx, reader.ID, "reader", true)
		assert.Error(t, err)
		assert.True(t, models.IsCode(err, "SELF_FOLLOW"))

		following, err := svc.IsFollowing(ctx, reader.ID, reader.ID)
		assert.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("self unfollow is a harmless no-op", func(t *testing.T) {
		assert.NoError(t, svc.SetFollowing(ctx, reader.ID, "reader", false))
	})

	t.Run("unknown author", func(t *testing.T) {
		err := svc.SetFollowing(ctx, reader.ID, "ghost", true)
		assert.Error(t, err)
		assert.True(t, models.IsCode(err, "NOT_FOUND"))
	})

	t.Run("unfollow and unfollow again", func(t *testing.T) {
		assert.NoError(t, svc.SetFollowing(ctx, reader.ID, "author", false))

		following, err := svc.IsFollowing(ctx, reader.ID, author.ID)
		assert.NoError(t, err)
		assert.False(t, following)

		assert.NoError(t, svc.SetFollowing(ctx, reader.ID, "author", false))
	})

	t.Run("list followed authors", func(t *testing.T) {
		require.NoError(t, svc.SetFollowing(ctx, reader.ID, "author", true))

		authors, err := svc.ListFollowedAuthors(ctx, reader.ID)
		assert.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "author", authors[0].Username)
	})
}
