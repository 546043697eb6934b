package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserEndpoint(t *testing.T) {
	app, _ := newTestServer(t)

	t.Run("creates an account", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/create", "", map[string]string{
			"email":    "new@example.com",
			"password": "test password",
			"name":     "New User",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "new@example.com", body["email"])
		assert.NotContains(t, body, "password", "the response must never carry the password")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/create", "", map[string]string{
			"email":    "New@Example.com",
			"password": "another password",
			"name":     "Duplicate",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/create", "", map[string]string{
			"email":    "short@example.com",
			"password": "pw",
			"name":     "Short",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateTokenEndpoint(t *testing.T) {
	app, s := newTestServer(t)
	registerUser(t, s, "token@example.com")

	t.Run("valid credentials yield a token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/token", "", map[string]string{
			"email":    "token@example.com",
			"password": "test password",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("the issued token authenticates requests", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/token", "", map[string]string{
			"email":    "token@example.com",
			"password": "test password",
		}))
		require.NoError(t, err)
		var body map[string]string
		decodeBody(t, resp, &body)

		me, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user/me", body["token"], nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, me.StatusCode)
	})

	t.Run("wrong password answers 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/token", "", map[string]string{
			"email":    "token@example.com",
			"password": "wrong",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown account answers 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/user/token", "", map[string]string{
			"email":    "ghost@example.com",
			"password": "whatever",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthRequired(t *testing.T) {
	app, s := newTestServer(t)
	_, token := registerUser(t, s, "auth@example.com")

	protectedTargets := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/user/me"},
		{http.MethodGet, "/api/tag/"},
		{http.MethodGet, "/api/chemcomp/"},
		{http.MethodGet, "/api/synthesize/"},
	}

	for _, target := range protectedTargets {
		t.Run("401 without a token: "+target.target, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, target.method, target.target, "", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}

	t.Run("garbage token is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user/me", "not-a-jwt", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token is accepted", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/user/me", token, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
