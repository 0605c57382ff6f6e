package clinic

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/clinic/client/auth/session"
	"github.com/viant/clinic/client/auth/store"
	"github.com/viant/clinic/client/auth/transport"
)

const (
	// DefaultBaseURL is the hosted clinic API.
	DefaultBaseURL = "https://backend-diagnostic-2.onrender.com/api"
	// DefaultRefreshPath is the refresh endpoint relative to the base URL.
	DefaultRefreshPath = "/users/refreshToken"
)

// ClientOptions defines options for configuring a clinic client.
type ClientOptions struct {
	BaseURL     string `yaml:"baseURL" json:"baseURL,omitempty" short:"u" long:"url" description:"clinic API base URL"`
	RefreshPath string `yaml:"refreshPath,omitempty" json:"refreshPath,omitempty" long:"refresh-path" description:"refresh endpoint path"`
	LoginPath   string `yaml:"loginPath,omitempty" json:"loginPath,omitempty" long:"login-path" description:"login entry point"`
	StoreURL    string `yaml:"storeURL,omitempty" json:"storeURL,omitempty" short:"s" long:"store" description:"credential store location, in-memory when empty"`
	SecretKey   string `yaml:"secretKey,omitempty" json:"secretKey,omitempty" short:"k" long:"key" description:"encrypt stored credentials with key, e.g. blowfish://default"`

	// Store, when set, takes precedence over StoreURL.
	Store store.Store `yaml:"-" json:"-" no-flag:"true"`
	// CookieJar is attached to both API and refresh calls.
	CookieJar http.CookieJar `yaml:"-" json:"-" no-flag:"true"`
	// Navigate receives the login path when the session ends.
	Navigate  session.NavigateFunc `yaml:"-" json:"-" no-flag:"true"`
	Transport http.RoundTripper    `yaml:"-" json:"-" no-flag:"true"`
	Logger    *slog.Logger         `yaml:"-" json:"-" no-flag:"true"`
	// Metrics, created once with transport.NewMetrics, is shared across clients.
	Metrics *transport.Metrics `yaml:"-" json:"-" no-flag:"true"`
}

func (c *ClientOptions) Init() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.RefreshPath == "" {
		c.RefreshPath = DefaultRefreshPath
	}
	if c.LoginPath == "" {
		c.LoginPath = session.DefaultLoginPath
	}
}

// RefreshURL returns the absolute refresh endpoint.
func (c *ClientOptions) RefreshURL() string {
	if strings.Contains(c.RefreshPath, "://") {
		return c.RefreshPath
	}
	return c.BaseURL + "/" + strings.TrimLeft(c.RefreshPath, "/")
}

// CredentialStore returns the configured store: the injected one, an
// encrypted secret, a plain file or process memory.
func (c *ClientOptions) CredentialStore(ctx context.Context) (store.Store, error) {
	if c.Store != nil {
		return c.Store, nil
	}
	if c.StoreURL == "" {
		return store.NewMemoryStore(), nil
	}
	URL := expandHome(c.StoreURL)
	if c.SecretKey != "" {
		secretStore, err := store.NewSecretStore(ctx, URL, c.SecretKey)
		if err != nil {
			return nil, err
		}
		return secretStore, nil
	}
	fileStore, err := store.NewFileStore(ctx, URL)
	if err != nil {
		return nil, err
	}
	return fileStore, nil
}

func expandHome(location string) string {
	if !strings.HasPrefix(location, "~/") {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, location[2:])
}
