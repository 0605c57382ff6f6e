// Package mock provides an in-memory fake of the clinic API for tests and
// local runs.
//
// Access tokens are short-lived HS256 JWTs and refresh tokens are random
// uuids, so expiry, revocation and refresh can be simulated without a real
// backend. Endpoint handlers can be overridden per test.
package mock
