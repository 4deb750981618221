package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHandler(t *testing.T) {
	h := newTestServer(t)
	author, _ := h.createUserWithToken(t, "tolstoy")
	fan, fanToken := h.createUserWithToken(t, "fan")

	for i := 0; i < 3; i++ {
		require.NoError(t, h.db.Create(&models.Post{Text: "chapter", AuthorID: author.ID}).Error)
	}
	require.NoError(t, h.db.Create(&models.Follow{UserID: fan.ID, AuthorID: author.ID}).Error)

	var profile struct {
		Author struct {
			Username string `json:"username"`
		} `json:"author"`
		PostsCount  int64         `json:"posts_count"`
		Subscribers int64         `json:"subscribers"`
		Signed      int64         `json:"signed"`
		Following   bool          `json:"following"`
		Posts       []models.Post `json:"posts"`
	}

	t.Run("anonymous viewer", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/users/tolstoy", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &profile)
		assert.Equal(t, "tolstoy", profile.Author.Username)
		assert.EqualValues(t, 3, profile.PostsCount)
		assert.EqualValues(t, 1, profile.Subscribers)
		assert.EqualValues(t, 0, profile.Signed)
		assert.False(t, profile.Following)
		assert.Len(t, profile.Posts, 3)
	})

	t.Run("authenticated follower sees the flag", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/users/tolstoy", fanToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &profile)
		assert.True(t, profile.Following)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/users/ghost", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMyProfileHandlers(t *testing.T) {
	h := newTestServer(t)
	_, token := h.createUserWithToken(t, "selfish")

	t.Run("requires auth", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("get own profile", func(t *testing.T) {
		resp := h.request(t, http.MethodGet, "/api/users/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "selfish", user.Username)
	})

	t.Run("update bio", func(t *testing.T) {
		resp := h.request(t, http.MethodPut, "/api/users/me", token, map[string]string{"bio": "writer"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "writer", user.Bio)
	})
}

func TestAboutHandlers(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/api/about/author", "/api/about/tech"} {
		resp := h.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
