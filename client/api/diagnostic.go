package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Diagnostic reads the diagnostic-center dashboard. Its shape is owned by
// the server, so it is returned undecoded.
type Diagnostic struct {
	client *Client
}

func (d *Diagnostic) Dashboard(ctx context.Context, centerID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := d.client.Do(ctx, http.MethodGet, "/diagnostic/dashboard/"+url.PathEscape(centerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
