package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	h := newTestServer(t)

	t.Run("valid signup", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "new_author",
			"email":    "new_author@example.com",
			"password": "SecurePass12!@",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "new_author", body.User.Username)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "weakling",
			"email":    "weakling@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "imposter",
			"email":    "new_author@example.com",
			"password": "SecurePass12!@",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "nopassword",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)

	signup := h.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "returning",
		"email":    "returning@example.com",
		"password": "SecurePass12!@",
	})
	require.Equal(t, http.StatusCreated, signup.StatusCode)
	_ = signup.Body.Close()

	t.Run("correct credentials", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "returning@example.com",
			"password": "SecurePass12!@",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "returning@example.com",
			"password": "WrongPass12!@",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := h.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ghost@example.com",
			"password": "SecurePass12!@",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
