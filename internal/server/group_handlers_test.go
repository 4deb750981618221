package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupHandlers(t *testing.T) {
	h := newTestServer(t)
	author, _ := h.createUserWithToken(t, "author")

	group := &models.Group{Title: "Cats", Slug: "cats", Description: "About cats"}
	require.NoError(t, h.db.Create(group).Error)
	require.NoError(t, h.db.Create(&models.Post{Text: "in group", AuthorID: author.ID, GroupID: &group.ID}).Error)
	require.NoError(t, h.db.Create(&models.Post{Text: "outside", AuthorID: author.ID}).Error)

	t.Run("list groups", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/groups/", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var groups []models.Group
		decodeBody(t, resp, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, "cats", groups[0].Slug)
	})

	t.Run("group detail by slug", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/groups/cats", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var fetched models.Group
		decodeBody(t, resp, &fetched)
		assert.Equal(t, "Cats", fetched.Title)
	})

	t.Run("group feed holds only group posts", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/groups/cats/posts", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var feed struct {
			Group models.Group  `json:"group"`
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, resp, &feed)
		assert.Equal(t, "cats", feed.Group.Slug)
		require.Len(t, feed.Posts, 1)
		assert.Equal(t, "in group", feed.Posts[0].Text)
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/groups/missing/posts", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
