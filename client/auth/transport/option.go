package transport

import (
	"log/slog"
	"net/http"

	"github.com/viant/clinic/client/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets the credential store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithRefreshURL sets the absolute URL of the refresh endpoint
func WithRefreshURL(URL string) Option {
	return func(t *RoundTripper) {
		t.refreshURL = URL
	}
}

// WithTransport sets the inner transport used for all network calls
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithSessionExpired sets the callback invoked on unrecoverable authorization failure
func WithSessionExpired(fn SessionExpiredFunc) Option {
	return func(t *RoundTripper) {
		t.sessionExpired = fn
	}
}

// WithLogger sets logger, otherwise the context logger is used
func WithLogger(logger *slog.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithCookieJar sends and stores cookies for every call, including the refresh call
func WithCookieJar(jar http.CookieJar) Option {
	return func(t *RoundTripper) {
		t.jar = jar
	}
}

// WithMetrics records call outcomes, refreshes and expirations
func WithMetrics(metrics *Metrics) Option {
	return func(t *RoundTripper) {
		t.metrics = metrics
	}
}
