package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetMyProfile(t *testing.T) {
	app, s := newTestServer(t)
	user, token := registerUser(t, s, "me@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user/me", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.EqualValues(t, user.ID, body["id"])
	assert.Equal(t, "me@example.com", body["email"])
	assert.Equal(t, "Test User", body["name"])
	assert.NotContains(t, body, "password")
}

func TestUpdateMyProfile(t *testing.T) {
	app, s := newTestServer(t)
	user, token := registerUser(t, s, "update-me@example.com")

	t.Run("patch updates name only", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/user/me", token, map[string]string{
			"name": "Renamed",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "Renamed", body["name"])
		assert.Equal(t, "update-me@example.com", body["email"], "email is immutable")
	})

	t.Run("patch rehashes a new password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/user/me", token, map[string]string{
			"password": "fresh password",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		stored, err := s.userRepo.GetByID(t.Context(), user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("fresh password")))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/user/me", token, map[string]string{
			"password": "pw",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
