package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagEndpoints(t *testing.T) {
	app, s := newTestServer(t)
	_, token := registerUser(t, s, "tags@example.com")
	_, otherToken := registerUser(t, s, "tags-other@example.com")

	t.Run("create answers 201 with the new tag", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tag/", token, map[string]string{
			"name": "Aqueous",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "Aqueous", body["name"])
		assert.NotContains(t, body, "user_id", "ownership is internal")
	})

	t.Run("blank name answers 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tag/", token, map[string]string{
			"name": "   ",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list is owner scoped and name descending", func(t *testing.T) {
		for _, name := range []string{"Basic", "Caustic"} {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tag/", token, map[string]string{"name": name}))
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tag/", otherToken, map[string]string{"name": "Foreign"}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		listResp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tag/", token, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, listResp.StatusCode)

		var tags []map[string]any
		decodeBody(t, listResp, &tags)
		require.Len(t, tags, 3)
		assert.Equal(t, "Caustic", tags[0]["name"])
		assert.Equal(t, "Basic", tags[1]["name"])
		assert.Equal(t, "Aqueous", tags[2]["name"])
	})
}

func TestTagAssignedOnlyFilter(t *testing.T) {
	app, s := newTestServer(t)
	user, token := registerUser(t, s, "assigned@example.com")

	assigned, err := s.catalogService.CreateTag(t.Context(), user.ID, "Used")
	require.NoError(t, err)
	_, err = s.catalogService.CreateTag(t.Context(), user.ID, "Idle")
	require.NoError(t, err)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/synthesize/", token, map[string]any{
		"title":      "Mixture",
		"time_years": 2,
		"tags":       []uint{assigned.ID},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tag/?assigned_only=1", token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var tags []map[string]any
	decodeBody(t, listResp, &tags)
	require.Len(t, tags, 1)
	assert.Equal(t, "Used", tags[0]["name"])
}
