package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/viant/clinic/client/api"
	"github.com/viant/clinic/client/auth/store"
	"github.com/viant/clinic/client/auth/transport"
	"github.com/viant/clinic/internal/logctx"
	"github.com/viant/clinic/internal/redact"
	"github.com/viant/clinic/schema"
)

// DefaultLoginPath is where LoginRedirect sends the user.
const DefaultLoginPath = "/login"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoRefresher        = errors.New("refresher was not configured")
	ErrIncompleteLogin    = errors.New("login response has no credentials")
	ErrNoUser             = errors.New("response has no user")
)

// Service manages the credentials of a single user session.
type Service struct {
	client     *api.Client
	store      store.Store
	refresher  Refresher
	loginPath  string
	navigate   NavigateFunc
	logger     *slog.Logger
	redirected atomic.Bool
}

// New creates a session Service; client should share store with its transport.
func New(client *api.Client, credentials store.Store, options ...Option) *Service {
	ret := &Service{
		client:    client,
		store:     credentials,
		loginPath: DefaultLoginPath,
		navigate:  func(context.Context, string) {},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (s *Service) Store() store.Store {
	return s.store
}

func (s *Service) LoginPath() string {
	return s.loginPath
}

// Login authenticates with email and password and persists both credentials.
// Any failure clears stored credentials without redirecting: the caller is
// already logging in.
func (s *Service) Login(ctx context.Context, email, password string) (*schema.User, error) {
	user, err := s.login(ctx, email, password)
	if err != nil {
		if clearErr := store.ClearAll(s.store); clearErr != nil {
			s.log(ctx).Warn("failed to clear credentials", slog.String("err", clearErr.Error()))
		}
		return nil, err
	}
	s.redirected.Store(false)
	s.log(ctx).Info("logged in", slog.String("email", redact.Email(user.Email)), slog.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) login(ctx context.Context, email, password string) (*schema.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	// a rejected login must not trigger a refresh
	ctx = transport.WithRetried(ctx)
	var response schema.LoginResponse
	if err := s.client.Do(ctx, http.MethodPost, "/users/login", nil, &schema.LoginRequest{Email: email, Password: password}, &response); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			apiErr.Outcome = transport.OtherFailure
			return nil, fmt.Errorf("failed to login: %w: %w", ErrInvalidCredentials, apiErr)
		}
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if response.AccessToken == "" || response.RefreshToken == "" {
		return nil, ErrIncompleteLogin
	}
	if response.User == nil {
		return nil, ErrNoUser
	}
	if err := s.store.Set(store.Access, response.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}
	if err := s.store.Set(store.Refresh, response.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return response.User, nil
}

// Profile returns the authenticated user.
func (s *Service) Profile(ctx context.Context) (*schema.User, error) {
	var response schema.ProfileResponse
	if err := s.client.Do(ctx, http.MethodGet, "/users/profile", nil, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if response.User == nil {
		return nil, ErrNoUser
	}
	return response.User, nil
}

// Refresh explicitly renews the access credential; failure logs the session out.
func (s *Service) Refresh(ctx context.Context) error {
	if s.refresher == nil {
		return ErrNoRefresher
	}
	accessToken, err := s.refresher.Refresh(ctx)
	if err != nil {
		_ = s.Logout(ctx)
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	s.log(ctx).Debug("session refreshed", slog.String("accessToken", redact.Token(accessToken)))
	return nil
}

// CheckAuth restores the session from stored credentials and returns its user.
// Without an access credential it refreshes first. Failures log the session out.
func (s *Service) CheckAuth(ctx context.Context) (*schema.User, error) {
	if _, ok := s.store.Get(store.Access); !ok {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	user, err := s.Profile(ctx)
	if err != nil {
		_ = s.Logout(ctx)
		return nil, err
	}
	return user, nil
}

// Logout clears both credentials and redirects to the login entry point.
func (s *Service) Logout(ctx context.Context) error {
	err := store.ClearAll(s.store)
	s.LoginRedirect(ctx, nil)
	return err
}

// LoginRedirect navigates to the login path once until the next successful
// login. It matches transport.SessionExpiredFunc.
func (s *Service) LoginRedirect(ctx context.Context, cause error) {
	if !s.redirected.CompareAndSwap(false, true) {
		return
	}
	logger := s.log(ctx)
	if cause != nil {
		logger = logger.With(slog.String("cause", cause.Error()))
	}
	logger.Info("redirecting to login", slog.String("path", s.loginPath))
	s.navigate(ctx, s.loginPath)
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logctx.From(ctx)
}
