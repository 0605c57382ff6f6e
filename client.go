package clinic

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/viant/clinic/client/api"
	"github.com/viant/clinic/client/auth/session"
	"github.com/viant/clinic/client/auth/store"
	"github.com/viant/clinic/client/auth/transport"
)

// Client bundles the components sharing one credential store.
type Client struct {
	Options    *ClientOptions
	Store      store.Store
	Transport  *transport.RoundTripper
	HTTPClient *http.Client
	API        *api.Client
	Session    *session.Service
}

// NewClient creates a clinic client configured via ClientOptions.
func NewClient(ctx context.Context, options *ClientOptions) (*Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	credentials, err := options.CredentialStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	ret := &Client{Options: options, Store: credentials}

	transportOpts := []transport.Option{
		transport.WithStore(credentials),
		transport.WithRefreshURL(options.RefreshURL()),
		transport.WithSessionExpired(func(ctx context.Context, cause error) {
			ret.Session.LoginRedirect(ctx, cause)
		}),
	}
	if options.Transport != nil {
		transportOpts = append(transportOpts, transport.WithTransport(options.Transport))
	}
	if options.CookieJar != nil {
		transportOpts = append(transportOpts, transport.WithCookieJar(options.CookieJar))
	}
	if options.Logger != nil {
		transportOpts = append(transportOpts, transport.WithLogger(options.Logger))
	}
	if options.Metrics != nil {
		transportOpts = append(transportOpts, transport.WithMetrics(options.Metrics))
	}
	if ret.Transport, err = transport.New(transportOpts...); err != nil {
		return nil, err
	}
	ret.HTTPClient = &http.Client{Transport: ret.Transport}

	var apiOpts []api.Option
	sessionOpts := []session.Option{
		session.WithRefresher(ret.Transport),
		session.WithLoginPath(options.LoginPath),
	}
	if options.Navigate != nil {
		sessionOpts = append(sessionOpts, session.WithNavigate(options.Navigate))
	}
	if options.Logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(options.Logger))
		sessionOpts = append(sessionOpts, session.WithLogger(options.Logger))
	}
	ret.API = api.New(options.BaseURL, ret.HTTPClient, apiOpts...)
	ret.Session = session.New(ret.API, credentials, sessionOpts...)
	return ret, nil
}

// TokenSource exposes the stored access credential to oauth2-based callers.
func (c *Client) TokenSource() oauth2.TokenSource {
	return store.TokenSource(c.Store)
}
