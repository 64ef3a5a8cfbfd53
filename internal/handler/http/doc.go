// Package http contains the HTTP transport layer: the chi router, the
// registration endpoint, the informational pages, the middleware chain
// (trace id, request logging, panic recovery), and the classifier that turns
// a Report into a stable, safe JSON error response.
package http
