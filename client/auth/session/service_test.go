package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/clinic/client/api"
	"github.com/viant/clinic/client/auth/store"
	"github.com/viant/clinic/client/auth/transport"
	"github.com/viant/clinic/client/mock"
	"github.com/viant/clinic/schema"
)

const (
	email    = "employee@clinic.test"
	password = "pa55"
)

type navigator struct {
	mux   sync.Mutex
	paths []string
}

func (n *navigator) navigate(_ context.Context, path string) {
	n.mux.Lock()
	defer n.mux.Unlock()
	n.paths = append(n.paths, path)
}

func (n *navigator) visited() []string {
	n.mux.Lock()
	defer n.mux.Unlock()
	return append([]string{}, n.paths...)
}

type fixture struct {
	server    *mock.HTTPTestServer
	store     store.Store
	navigator *navigator
	session   *Service
}

func newFixture(t *testing.T, options ...store.MemoryStoreOption) *fixture {
	t.Helper()
	server := mock.NewHTTPTestServer(mock.WithUser(&schema.User{Name: "Eve", Email: email, Role: schema.RoleEmployee, EmployeeID: "e1"}, password))
	t.Cleanup(server.Close)
	ret := &fixture{server: server, store: store.NewMemoryStore(options...), navigator: &navigator{}}
	var service *Service
	rt, err := transport.New(
		transport.WithStore(ret.store),
		transport.WithRefreshURL(server.URL+"/users/refreshToken"),
		transport.WithSessionExpired(func(ctx context.Context, cause error) {
			service.LoginRedirect(ctx, cause)
		}),
	)
	require.NoError(t, err)
	client := api.New(server.URL, &http.Client{Transport: rt})
	service = New(client, ret.store, WithRefresher(rt), WithNavigate(ret.navigator.navigate), WithLoginPath("/signin"))
	ret.session = service
	return ret
}

func TestService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.session.Login(ctx, email, password)
	require.NoError(t, err)
	assert.Equal(t, schema.RoleEmployee, user.Role)
	access, ok := f.store.Get(store.Access)
	assert.True(t, ok)
	assert.NotEmpty(t, access)
	_, ok = f.store.Get(store.Refresh)
	assert.True(t, ok)
	assert.Empty(t, f.navigator.visited())

	profile, err := f.session.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Eve", profile.Name)
}

func TestService_Login_Failure(t *testing.T) {
	var testCases = []struct {
		description string
		email       string
		password    string
		expectErr   error
	}{
		{description: "missing password", email: email, expectErr: ErrMissingCredentials},
		{description: "wrong password", email: email, password: "nope", expectErr: ErrInvalidCredentials},
		{description: "unknown user", email: "nobody@clinic.test", password: password, expectErr: ErrInvalidCredentials},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			f := newFixture(t, store.WithCredentials("stale-access", "stale-refresh"))
			_, err := f.session.Login(context.Background(), testCase.email, testCase.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, testCase.expectErr)
			assert.False(t, errors.Is(err, api.ErrSessionExpired), "rejected login is not an expired session")
			if testCase.expectErr == ErrInvalidCredentials {
				var apiErr *api.Error
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
				assert.Equal(t, "Invalid email or password", apiErr.Message)
			}
			assert.Equal(t, 0, f.server.RefreshCalls())
			_, ok := f.store.Get(store.Access)
			assert.False(t, ok)
			_, ok = f.store.Get(store.Refresh)
			assert.False(t, ok)
			assert.Empty(t, f.navigator.visited())
		})
	}
}

func TestService_Logout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, email, password)
	require.NoError(t, err)

	require.NoError(t, f.session.Logout(ctx))
	require.NoError(t, f.session.Logout(ctx))
	_, ok := f.store.Get(store.Access)
	assert.False(t, ok)
	_, ok = f.store.Get(store.Refresh)
	assert.False(t, ok)
	assert.Equal(t, []string{"/signin"}, f.navigator.visited())

	_, err = f.session.Login(ctx, email, password)
	require.NoError(t, err)
	require.NoError(t, f.session.Logout(ctx))
	assert.Equal(t, []string{"/signin", "/signin"}, f.navigator.visited())
}

func TestService_CheckAuth(t *testing.T) {
	t.Run("access present", func(t *testing.T) {
		f := newFixture(t)
		access, refresh, err := f.server.IssueTokens(email)
		require.NoError(t, err)
		require.NoError(t, f.store.Set(store.Access, access))
		require.NoError(t, f.store.Set(store.Refresh, refresh))

		user, err := f.session.CheckAuth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, 0, f.server.RefreshCalls())
	})

	t.Run("refresh only", func(t *testing.T) {
		f := newFixture(t)
		_, refresh, err := f.server.IssueTokens(email)
		require.NoError(t, err)
		require.NoError(t, f.store.Set(store.Refresh, refresh))

		user, err := f.session.CheckAuth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, 1, f.server.RefreshCalls())
		_, ok := f.store.Get(store.Access)
		assert.True(t, ok)
		assert.Empty(t, f.navigator.visited())
	})

	t.Run("no credentials", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.session.CheckAuth(context.Background())
		assert.ErrorIs(t, err, transport.ErrNoRefreshToken)
		assert.Equal(t, 0, f.server.RefreshCalls())
		assert.Equal(t, []string{"/signin"}, f.navigator.visited())
	})

	t.Run("refresh rejected", func(t *testing.T) {
		f := newFixture(t, store.WithCredentials("", "revoked"))
		_, err := f.session.CheckAuth(context.Background())
		var refreshErr *transport.RefreshError
		require.True(t, errors.As(err, &refreshErr))
		assert.Equal(t, http.StatusForbidden, refreshErr.StatusCode)
		_, ok := f.store.Get(store.Refresh)
		assert.False(t, ok)
		assert.Equal(t, []string{"/signin"}, f.navigator.visited())
	})
}

func TestService_ExpiredDuringCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.session.Login(ctx, email, password)
	require.NoError(t, err)
	access, _ := f.store.Get(store.Access)
	refresh, _ := f.store.Get(store.Refresh)
	f.server.RevokeAccess(access)
	f.server.RevokeRefresh(refresh)

	_, err = f.session.Profile(ctx)
	assert.ErrorIs(t, err, api.ErrSessionExpired)
	_, err = f.session.Profile(ctx)
	assert.Error(t, err)
	assert.Equal(t, []string{"/signin"}, f.navigator.visited())
}

func TestService_Refresh_NotConfigured(t *testing.T) {
	service := New(api.New("http://localhost", nil), store.NewMemoryStore())
	assert.ErrorIs(t, service.Refresh(context.Background()), ErrNoRefresher)
	assert.Equal(t, DefaultLoginPath, service.LoginPath())
}
