package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsScopedToOwner(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/notifications", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	calls := env.fake.calls("/rest/v1/notifications")
	require.Len(t, calls, 1)
	q := calls[0].Query
	assert.Equal(t, "eq."+testUserID, q.Get("user_id"))
	assert.Equal(t, "created_at.desc", q.Get("order"))
	assert.Empty(t, q.Get("read_at"), "no unread filter expected")
}

func TestListNotificationsUnreadOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/notifications?unread", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	calls := env.fake.calls("/rest/v1/notifications")
	require.Len(t, calls, 1)
	assert.Equal(t, "is.null", calls[0].Query.Get("read_at"))
}

func TestMarkNotificationsRead(t *testing.T) {
	env := newTestEnv(t)

	ids := []string{
		"66666666-6666-6666-6666-666666666666",
		"77777777-7777-7777-7777-777777777777",
	}
	body := fmt.Sprintf(`{"ids":[%q,%q],"read":true}`, ids[0], ids[1])

	rec := env.do(http.MethodPatch, "/api/v1/notifications", body, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	calls := env.fake.calls("/rest/v1/notifications")
	require.Len(t, calls, 1)
	call := calls[0]
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "eq."+testUserID, call.Query.Get("user_id"), "update must stay inside the caller's rows")
	idFilter := call.Query.Get("id")
	assert.Contains(t, idFilter, "in.(")
	for _, id := range ids {
		assert.Contains(t, idFilter, id)
	}

	var patch map[string]any
	require.NoError(t, json.Unmarshal(call.Body, &patch))
	assert.NotNil(t, patch["read_at"], "marking read stamps read_at")
}

func TestMarkNotificationsUnread(t *testing.T) {
	env := newTestEnv(t)

	body := `{"ids":["66666666-6666-6666-6666-666666666666"],"read":false}`

	rec := env.do(http.MethodPatch, "/api/v1/notifications", body, true)
	require.Equal(t, http.StatusOK, rec.Code)

	calls := env.fake.calls("/rest/v1/notifications")
	require.Len(t, calls, 1)

	var patch map[string]any
	require.NoError(t, json.Unmarshal(calls[0].Body, &patch))
	value, present := patch["read_at"]
	assert.True(t, present)
	assert.Nil(t, value, "marking unread clears read_at")
}

func TestMarkNotificationsStoreRejection(t *testing.T) {
	env := newTestEnv(t)
	env.fake.rest = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"permission denied"}`)
	}

	body := `{"ids":["66666666-6666-6666-6666-666666666666"],"read":true}`
	rec := env.do(http.MethodPatch, "/api/v1/notifications", body, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeErrorBody(t, rec)
	assert.Equal(t, "notifications_update_failed", errBody.Error.Code)
}
