package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dating-app-backend/internal/config"
	"dating-app-backend/internal/supabase"
)

const (
	testToken    = "test-token"
	testUserID   = "11111111-1111-1111-1111-111111111111"
	testTargetID = "22222222-2222-2222-2222-222222222222"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}

// recordedRequest is one request the fake platform received
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// platformFake stands in for the whole managed platform: identity
// provider, data API and object storage under one base URL. It records
// every request so tests can assert what was (or was not) delegated.
type platformFake struct {
	mu      sync.Mutex
	reqs    []recordedRequest
	auth    http.HandlerFunc // override for /auth/v1/* except /user
	rest    http.HandlerFunc // override for /rest/v1/*
	storage http.HandlerFunc // override for /storage/v1/*
	srv     *httptest.Server
}

func newPlatformFake(t *testing.T) *platformFake {
	t.Helper()
	f := &platformFake{}
	f.srv = httptest.NewServer(f)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *platformFake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.reqs = append(f.reqs, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()
	r.Body = io.NopCloser(bytes.NewReader(body))

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/auth/v1/user":
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"msg":"invalid token"}`)
			return
		}
		fmt.Fprintf(w, `{"id":%q,"aud":"authenticated","email":"caller@example.com"}`, testUserID)

	case strings.HasPrefix(r.URL.Path, "/auth/v1/"):
		if f.auth != nil {
			f.auth(w, r)
			return
		}
		fmt.Fprintf(w,
			`{"access_token":%q,"token_type":"bearer","expires_in":3600,"refresh_token":"refresh","user":{"id":%q,"aud":"authenticated","email":"caller@example.com"}}`,
			testToken, testUserID)

	case strings.HasPrefix(r.URL.Path, "/rest/v1/"):
		if f.rest != nil {
			f.rest(w, r)
			return
		}
		fmt.Fprint(w, `[]`)

	case strings.HasPrefix(r.URL.Path, "/storage/v1/"):
		if f.storage != nil {
			f.storage(w, r)
			return
		}
		if strings.Contains(r.URL.Path, "/upload/sign/") {
			fmt.Fprint(w, `{"url":"/object/upload/sign/media/x?token=sig"}`)
			return
		}
		fmt.Fprint(w, `[]`)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// calls returns the recorded requests whose path starts with prefix
func (f *platformFake) calls(prefix string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedRequest
	for _, req := range f.reqs {
		if strings.HasPrefix(req.Path, prefix) {
			out = append(out, req)
		}
	}
	return out
}

// storeCalls returns every data API and storage request received
func (f *platformFake) storeCalls() []recordedRequest {
	return append(f.calls("/rest/v1/"), f.calls("/storage/v1/")...)
}

type testEnv struct {
	fake   *platformFake
	router *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fake := newPlatformFake(t)
	cfg := &config.Config{
		Supabase: config.SupabaseConfig{
			URL:           fake.srv.URL,
			AnonKey:       "test-anon-key",
			StorageBucket: "media",
		},
		Frontend: config.FrontendConfig{BaseURL: "http://localhost:3000"},
	}
	client := supabase.New(cfg.Supabase)
	return &testEnv{fake: fake, router: NewRouter(cfg, client)}
}

func (e *testEnv) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// Every protected route must reject a request with no Authorization
// header before anything is delegated to the platform.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/feed"},
		{http.MethodPost, "/api/v1/like"},
		{http.MethodGet, "/api/v1/matches"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodPatch, "/api/v1/notifications"},
		{http.MethodGet, "/api/v1/photos"},
		{http.MethodPost, "/api/v1/photos"},
		{http.MethodDelete, "/api/v1/photos"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPatch, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/conversations/c1/messages"},
		{http.MethodPost, "/api/v1/conversations/c1/messages"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(route.method, route.target, "", false)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, "unauthorized", body.Error.Code)
			assert.Equal(t, "Missing Authorization header", body.Error.Message)
			assert.Empty(t, env.fake.reqs, "no platform call expected")
		})
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "unauthorized", body.Error.Code)
	assert.Equal(t, "Invalid token", body.Error.Message)
	assert.Empty(t, env.fake.storeCalls(), "no store call expected")
}

// A body violating any declared constraint must be rejected before the
// store is reached.
func TestInvalidBodiesNeverReachStore(t *testing.T) {
	cases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"like bad uuid", http.MethodPost, "/api/v1/like", `{"targetId":"not-a-uuid","type":"like"}`},
		{"like bad type", http.MethodPost, "/api/v1/like", fmt.Sprintf(`{"targetId":%q,"type":"wink"}`, testTargetID)},
		{"notifications empty ids", http.MethodPatch, "/api/v1/notifications", `{"ids":[],"read":true}`},
		{"notifications missing read", http.MethodPatch, "/api/v1/notifications", fmt.Sprintf(`{"ids":[%q]}`, testTargetID)},
		{"message empty content", http.MethodPost, "/api/v1/conversations/c1/messages", `{"content":""}`},
		{"profile unknown field", http.MethodPatch, "/api/v1/profile", `{"nickname":"zed"}`},
		{"profile short username", http.MethodPatch, "/api/v1/profile", `{"username":"ab"}`},
		{"photo missing content type", http.MethodPost, "/api/v1/photos", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(tc.method, tc.target, tc.body, true)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, "invalid_request", body.Error.Code)
			assert.Empty(t, env.fake.storeCalls(), "no store call expected")
		})
	}
}

// The scoped session must present the caller's own token to the data
// API, not the service key.
func TestStoreCallsCarryCallerToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/feed", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	restCalls := env.fake.calls("/rest/v1/")
	require.Len(t, restCalls, 1)
	assert.Equal(t, "Bearer "+testToken, restCalls[0].Header.Get("Authorization"))
	assert.Equal(t, "test-anon-key", restCalls[0].Header.Get("apikey"))
}
