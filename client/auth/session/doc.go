// Package session implements the user-facing session lifecycle on top of the
// authenticated transport: login, profile lookup, explicit refresh,
// authentication check, logout and the redirect to the login entry point.
package session
