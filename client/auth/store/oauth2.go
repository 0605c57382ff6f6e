package store

import (
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoAccessToken is returned by TokenSource when the store holds no access credential.
var ErrNoAccessToken = errors.New("no access token")

type tokenSource struct {
	store Store
}

func (t *tokenSource) Token() (*oauth2.Token, error) {
	access, ok := t.store.Get(Access)
	if !ok {
		return nil, ErrNoAccessToken
	}
	refresh, _ := t.store.Get(Refresh)
	return &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}, nil
}

// TokenSource exposes the current credential pair as an oauth2.TokenSource.
// The returned token has no expiry; renewal is left to the transport.
func TokenSource(s Store) oauth2.TokenSource {
	return &tokenSource{store: s}
}
