// Package transport implements an http.RoundTripper that attaches the session
// access credential to every outbound call and, when the server answers
// `401 Unauthorized`, exchanges the refresh credential for a new access
// credential and replays the original request exactly once.
//
// The refresh call goes straight to the inner transport, so it never carries
// the access credential and never re-enters the refresh protocol. When the
// session cannot be recovered (no refresh credential, or the refresh endpoint
// fails) the credentials are cleared and the SessionExpiredFunc supplied with
// WithSessionExpired is invoked; navigation to a login view is the callback's
// business, not the transport's.
//
// Concurrent calls that hit 401 at the same time each run their own refresh;
// refreshes are not coalesced, but every logical call refreshes at most once.
package transport
