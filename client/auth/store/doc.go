// Package store defines the session credential store used by the
// authenticated transport in the sibling `transport` package.
//
// A store keeps exactly two opaque strings, the access and the refresh
// credential, under the keys `accessToken` and `refreshToken`. The in-memory
// implementation is enough for tests and short-lived processes; FileStore and
// SecretStore persist the pair through viant/afs (optionally encrypted with
// viant/scy) so a session survives process restarts.
package store
