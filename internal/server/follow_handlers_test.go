package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowHandlers(t *testing.T) {
	h := newTestServer(t)
	reader, readerToken := h.createUserWithToken(t, "reader")
	followed, _ := h.createUserWithToken(t, "followed")

	require.NoError(t, h.db.Create(&models.Post{Text: "subscribed content", AuthorID: followed.ID}).Error)

	t.Run("follow feed requires auth", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/follow", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("feed empty before following", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var feed struct {
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, resp, &feed)
		assert.Empty(t, feed.Posts)
	})

	t.Run("follow then feed fills", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/users/followed/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		feedResp := h.request(t, http.MethodGet, "/api/follow", readerToken, nil)
		var feed struct {
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, feedResp, &feed)
		require.Len(t, feed.Posts, 1)
		assert.Equal(t, "subscribed content", feed.Posts[0].Text)
	})

	t.Run("double follow keeps one edge", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/users/followed/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var count int64
		h.db.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, followed.ID).
			Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("self follow answers with own profile and no edge", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/users/reader/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var profile struct {
			Author struct {
				Username string `json:"username"`
			} `json:"author"`
			Following bool `json:"following"`
		}
		decodeBody(t, resp, &profile)
		assert.Equal(t, "reader", profile.Author.Username)
		assert.False(t, profile.Following)

		var count int64
		h.db.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", reader.ID, reader.ID).
			Count(&count)
		assert.Zero(t, count)
	})

	t.Run("follow unknown author", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/users/ghost/follow", readerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unfollow empties feed and repeats harmlessly", func(t *testing.T) {
		resp := h.request(t, http.MethodDelete, "/api/users/followed/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		again := h.request(t, http.MethodDelete, "/api/users/followed/follow", readerToken, nil)
		assert.Equal(t, http.StatusOK, again.StatusCode)
		_ = again.Body.Close()

		feedResp := h.request(t, http.MethodGet, "/api/follow", readerToken, nil)
		var feed struct {
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, feedResp, &feed)
		assert.Empty(t, feed.Posts)
	})
}
