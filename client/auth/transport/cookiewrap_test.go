package transport

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/clinic/client/auth/store"
)

type cookieServer struct {
	mu      sync.Mutex
	cookies map[string][]string
}

func (s *cookieServer) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var values []string
	for _, cookie := range r.Cookies() {
		values = append(values, cookie.Name+"="+cookie.Value)
	}
	s.cookies[r.URL.Path] = values
}

func (s *cookieServer) seen(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cookies[path]
}

func (s *cookieServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	switch r.URL.Path {
	case "/users/login":
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s1", Path: "/"})
	case "/users/refreshToken":
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "NEW"})
	default:
		if r.Header.Get("Authorization") != "Bearer NEW" {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
		}
	}
}

func TestRoundTripper_CookieJar(t *testing.T) {
	api := &cookieServer{cookies: map[string][]string{}}
	server := httptest.NewServer(api)
	defer server.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	rt, err := New(
		WithStore(store.NewMemoryStore(store.WithCredentials("expired", "R1"))),
		WithRefreshURL(server.URL+"/users/refreshToken"),
		WithCookieJar(jar),
	)
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	resp, err := client.Post(server.URL+"/users/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(server.URL + "/employees")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"sid=s1"}, api.seen("/users/refreshToken"), "refresh call is credentialed")
	assert.Equal(t, []string{"sid=s1"}, api.seen("/employees"))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/leaves", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "mine"})
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, []string{"sid=mine"}, api.seen("/leaves"), "request cookie wins over jar")
}
