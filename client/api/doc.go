// Package api calls the clinic REST API through an authenticated
// *http.Client. It adds JSON encoding and error mapping on top of the
// transport and exposes typed services for employees, leaves, salaries and
// the diagnostic-center dashboard. None of them has special knowledge of
// credentials; expiry handling lives entirely in the transport.
package api
