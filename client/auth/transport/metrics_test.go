package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/clinic/client/auth/store"
)

func TestRoundTripper_Metrics(t *testing.T) {
	api := &apiServer{validAccess: "A2", validRefresh: "R1", issued: "A2"}
	server := httptest.NewServer(api)
	defer server.Close()

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	credentials := store.NewMemoryStore(store.WithCredentials("A1", "R1"))
	rt, err := New(
		WithStore(credentials),
		WithRefreshURL(server.URL+"/users/refreshToken"),
		WithMetrics(metrics),
	)
	require.NoError(t, err)
	client := &http.Client{Transport: rt}

	get := func(path string) {
		resp, err := client.Get(server.URL + path)
		if err == nil {
			resp.Body.Close()
		}
	}
	get("/a")    // 401, refresh ok, retried
	get("/a")    // success with refreshed token
	get("/boom") // other failure
	require.NoError(t, credentials.Clear(store.Access))
	require.NoError(t, credentials.Clear(store.Refresh))
	get("/a") // 401 without refresh credential

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("otherFailure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("terminalAuthFailure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Refreshes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Retries))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Expirations.WithLabelValues("no_refresh_token")))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCauseLabel(t *testing.T) {
	assert.Equal(t, "no_refresh_token", causeLabel(ErrNoRefreshToken))
	assert.Equal(t, "rejected_after_refresh", causeLabel(ErrRejectedAfterRefresh))
	assert.Equal(t, "refresh_failed", causeLabel(&RefreshError{StatusCode: http.StatusForbidden}))
	var metrics *Metrics
	metrics.request(Success)
	metrics.expire(ErrNoRefreshToken)
}
