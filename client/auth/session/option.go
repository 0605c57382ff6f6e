package session

import (
	"context"
	"log/slog"
)

// NavigateFunc moves the user to path, typically the login entry point.
type NavigateFunc func(ctx context.Context, path string)

// Refresher exchanges the stored refresh credential for a new access credential.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

type Option func(*Service)

// WithLoginPath overrides DefaultLoginPath
func WithLoginPath(path string) Option {
	return func(s *Service) {
		s.loginPath = path
	}
}

// WithNavigate sets the redirect side effect
func WithNavigate(fn NavigateFunc) Option {
	return func(s *Service) {
		s.navigate = fn
	}
}

// WithRefresher sets the component used by Refresh and CheckAuth
func WithRefresher(refresher Refresher) Option {
	return func(s *Service) {
		s.refresher = refresher
	}
}

// WithLogger sets logger, otherwise the context logger is used
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
