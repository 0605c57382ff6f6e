package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/clinic/client/auth/store"
)

type refreshRequest struct {
	Token string `json:"token"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Refresh exchanges the stored refresh credential for a new access credential
// and stores it. Unlike the automatic path it neither clears credentials nor
// invokes the session-expired callback; that is left to the caller.
func (r *RoundTripper) Refresh(ctx context.Context) (string, error) {
	refreshToken, ok := r.store.Get(store.Refresh)
	if !ok || refreshToken == "" {
		return "", ErrNoRefreshToken
	}
	accessToken, err := r.refresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if err = r.store.Set(store.Access, accessToken); err != nil {
		return "", fmt.Errorf("failed to store access token: %w", err)
	}
	return accessToken, nil
}

// refresh calls the refresh endpoint on the inner transport.
func (r *RoundTripper) refresh(ctx context.Context, refreshToken string) (string, error) {
	accessToken, err := r.exchange(ctx, refreshToken)
	r.metrics.refresh(err)
	return accessToken, err
}

func (r *RoundTripper) exchange(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(&refreshRequest{Token: refreshToken})
	if err != nil {
		return "", &RefreshError{Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.refreshURL, bytes.NewReader(body))
	if err != nil {
		return "", &RefreshError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.transport.RoundTrip(req)
	if err != nil {
		return "", &RefreshError{Err: err}
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RefreshError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &RefreshError{StatusCode: resp.StatusCode, Payload: payload}
	}
	var out refreshResponse
	if err = json.Unmarshal(payload, &out); err != nil {
		return "", &RefreshError{StatusCode: resp.StatusCode, Payload: payload, Err: err}
	}
	if out.AccessToken == "" {
		return "", &RefreshError{StatusCode: resp.StatusCode, Payload: payload, Err: ErrMissingAccessToken}
	}
	return out.AccessToken, nil
}
