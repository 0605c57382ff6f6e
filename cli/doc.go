// Package cli implements the clinic command line: session management, raw
// API calls, employee, leave and salary commands, and a local mock server.
package cli
