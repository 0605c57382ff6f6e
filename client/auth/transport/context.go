package transport

import (
	"context"
)

type (
	contextRetryKey string
)

const (
	// ContextRetriedKey marks a request that already went through one refresh-and-retry cycle.
	ContextRetriedKey contextRetryKey = "retried"
)

// WithRetried returns a context whose requests are treated as already retried:
// a 401 answer is returned to the caller without attempting a refresh.
func WithRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextRetriedKey, true)
}

func isRetried(ctx context.Context) bool {
	if value := ctx.Value(ContextRetriedKey); value != nil {
		retried, _ := value.(bool)
		return retried
	}
	return false
}
