package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/viant/clinic/client/auth/store"
	"github.com/viant/clinic/internal/logctx"
)

// SessionExpiredFunc is invoked once per call that ends the session; cause is
// ErrNoRefreshToken, ErrRejectedAfterRefresh or a *RefreshError.
// Implementations must be idempotent.
type SessionExpiredFunc func(ctx context.Context, cause error)

// RoundTripper injects the access credential and recovers from its expiry.
type RoundTripper struct {
	store          store.Store
	refreshURL     string
	transport      http.RoundTripper
	jar            http.CookieJar
	sessionExpired SessionExpiredFunc
	logger         *slog.Logger
	metrics        *Metrics
}

// New creates a RoundTripper; WithRefreshURL is required.
func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport:      http.DefaultTransport,
		store:          store.NewMemoryStore(),
		sessionExpired: func(context.Context, error) {},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.refreshURL == "" {
		return nil, errors.New("refresh URL was empty")
	}
	if ret.transport == nil {
		ret.transport = http.DefaultTransport
	}
	if ret.jar != nil {
		ret.transport = withCredentials(ret.transport, ret.jar)
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.roundTrip(req)
	r.metrics.request(Classify(resp, err))
	return resp, err
}

func (r *RoundTripper) roundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	call, err := newAttempt(req)
	if err != nil {
		return nil, err
	}
	logger := r.log(ctx).With(
		slog.String("request_id", call.requestID),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	// 1) Send with whatever access credential is stored.
	accessToken, _ := r.store.Get(store.Access)
	if err = call.advance(Sent); err != nil {
		return nil, err
	}
	resp, err := r.transport.RoundTrip(call.build(ctx, accessToken))
	if err != nil {
		_ = call.advance(Failed)
		return nil, err
	}

	// 2) Anything but 401 goes back unchanged.
	if resp.StatusCode != http.StatusUnauthorized {
		_ = call.advance(Succeeded)
		return resp, nil
	}

	// 3) 401 on a call that already had its one refresh.
	if !call.markRetried() {
		_ = call.advance(FailedTerminal)
		logger.Debug("unauthorized after retry")
		return resp, nil
	}
	if err = call.advance(RefreshInFlight); err != nil {
		return nil, err
	}

	refreshToken, ok := r.store.Get(store.Refresh)
	if !ok || refreshToken == "" {
		_ = call.advance(FailedTerminal)
		logger.Warn("session expired", slog.String("cause", ErrNoRefreshToken.Error()))
		r.expire(ctx, logger, ErrNoRefreshToken, store.Access, store.Refresh)
		return resp, nil
	}
	drain(resp)

	logger.Debug("refreshing access token")
	accessToken, err = r.refresh(ctx, refreshToken)
	if err != nil {
		_ = call.advance(FailedTerminal)
		logger.Warn("session expired", slog.String("cause", err.Error()))
		r.expire(ctx, logger, err, store.Access)
		return nil, err
	}
	if err = r.store.Set(store.Access, accessToken); err != nil {
		logger.Warn("failed to persist access token", slog.String("err", err.Error()))
	}

	// 4) Replay once; the retry context stops any nested refresh.
	_ = call.advance(Retried)
	r.metrics.retry()
	resp, err = r.transport.RoundTrip(call.build(WithRetried(ctx), accessToken))
	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		logger.Warn("session expired", slog.String("cause", ErrRejectedAfterRefresh.Error()))
		r.expire(ctx, logger, ErrRejectedAfterRefresh, store.Access)
	}
	return resp, err
}

func (r *RoundTripper) expire(ctx context.Context, logger *slog.Logger, cause error, kinds ...store.Kind) {
	for _, kind := range kinds {
		if err := r.store.Clear(kind); err != nil {
			logger.Warn("failed to clear credential", slog.String("kind", kind.Key()), slog.String("err", err.Error()))
		}
	}
	r.metrics.expire(cause)
	r.sessionExpired(ctx, cause)
}

func (r *RoundTripper) log(ctx context.Context) *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logctx.From(ctx)
}
