package server

import (
	"fmt"
	"net/http"
	"testing"

	"moodrealm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_PostLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/users/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	alice := decode[AuthResponse](t, body)
	require.NotEmpty(t, alice.Token)

	resp, body = env.do(t, http.MethodPost, "/api/users/signup", "", map[string]string{
		"name": "Bob", "email": "bob@example.com", "password": "secret2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	bob := decode[AuthResponse](t, body)

	resp, body = env.do(t, http.MethodPost, "/api/posts", alice.Token, map[string]string{
		"content": "Hi", "mood": "Joyful", "contentType": "Quote",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	post := decode[map[string]any](t, body)
	assert.Equal(t, []any{}, post["likes"])
	assert.Equal(t, "Joyful", post["mood"])
	assert.Equal(t, "Alice", post["user"].(map[string]any)["name"])
	postPath := fmt.Sprintf("/api/posts/%d", int(post["_id"].(float64)))

	resp, body = env.do(t, http.MethodPost, postPath+"/like", bob.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"likes":1}`, string(body))

	resp, body = env.do(t, http.MethodPost, postPath+"/like", bob.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"likes":0}`, string(body))

	for i := 1; i < models.ReportThreshold; i++ {
		_, token := env.createUser(t, fmt.Sprintf("reporter%d", i))
		resp, body = env.do(t, http.MethodPost, postPath+"/report", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, fmt.Sprintf(`{"reports":%d}`, i), string(body))
	}

	_, token := env.createUser(t, "reporter15")
	resp, body = env.do(t, http.MethodPost, postPath+"/report", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Post deleted due to reports", message(t, body))

	resp, body = env.do(t, http.MethodGet, postPath, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", message(t, body))
}

func TestScenario_CommentsAndDelete(t *testing.T) {
	env := newTestEnv(t)
	_, ownerToken := env.createUser(t, "owner")
	_, otherToken := env.createUser(t, "other")

	resp, body := env.do(t, http.MethodPost, "/api/posts", ownerToken, map[string]string{
		"content": "Rainy day thoughts", "mood": "lonely", "contentType": "thought",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	postPath := fmt.Sprintf("/api/posts/%d", int(decode[map[string]any](t, body)["_id"].(float64)))

	resp, body = env.do(t, http.MethodPost, postPath+"/comment", otherToken, map[string]string{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Comment text is required", message(t, body))

	env.do(t, http.MethodPost, postPath+"/comment", otherToken, map[string]string{"text": "hang in there"})
	resp, body = env.do(t, http.MethodPost, postPath+"/comment", ownerToken, map[string]string{"text": "thanks"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments := decode[[]map[string]any](t, body)
	require.Len(t, comments, 2)
	assert.Equal(t, "hang in there", comments[0]["text"])
	assert.Equal(t, "other", comments[0]["user"].(map[string]any)["name"])
	assert.Equal(t, "thanks", comments[1]["text"])

	resp, body = env.do(t, http.MethodGet, postPath+"/comments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, body), 2)

	resp, body = env.do(t, http.MethodDelete, postPath, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Not allowed", message(t, body))

	resp, body = env.do(t, http.MethodDelete, postPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Post deleted", message(t, body))

	resp, _ = env.do(t, http.MethodGet, postPath, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, postPath+"/comment", otherToken, map[string]string{"text": "too late"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", message(t, body))

	resp, body = env.do(t, http.MethodPost, postPath+"/like", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", message(t, body))
}
