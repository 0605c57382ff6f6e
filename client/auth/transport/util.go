package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// attempt is one logical call: the caller's request, its buffered body and
// the one-shot retry marker. The caller's request is never modified.
type attempt struct {
	request   *http.Request
	body      []byte
	hasBody   bool
	requestID string
	retried   bool
	state     State
}

func newAttempt(req *http.Request) (*attempt, error) {
	ret := &attempt{request: req, retried: isRetried(req.Context()), state: Pending}
	if req.Body != nil && req.Body != http.NoBody {
		data, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		ret.body = data
		ret.hasBody = true
	}
	ret.requestID = req.Header.Get(requestIDHeader)
	if ret.requestID == "" {
		ret.requestID = uuid.NewString()
	}
	return ret, nil
}

func (a *attempt) advance(to State) error {
	if !a.state.CanTransition(to) {
		return fmt.Errorf("invalid transition %v -> %v", a.state, to)
	}
	a.state = to
	return nil
}

// markRetried sets the one-shot marker; it reports false when already set.
func (a *attempt) markRetried() bool {
	if a.retried {
		return false
	}
	a.retried = true
	return true
}

// build clones the caller's request with a fresh body reader and the given access credential.
func (a *attempt) build(ctx context.Context, accessToken string) *http.Request {
	cloned := a.request.Clone(ctx)
	if a.hasBody {
		body := a.body
		cloned.Body = io.NopCloser(bytes.NewReader(body))
		cloned.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		cloned.ContentLength = int64(len(body))
	}
	cloned.Header.Set(requestIDHeader, a.requestID)
	if accessToken != "" {
		cloned.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return cloned
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
