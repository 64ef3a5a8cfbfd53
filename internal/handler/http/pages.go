package http

import "net/http"

// welcome handles GET /.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to my Home Page!"))
}

// health handles GET /health. It reports process liveness only; it does not
// touch the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is UP and Running"))
}

// pageNotFound is the router fallback for unmatched paths. Unlike handler
// failures it answers with a plain informational body, same as the other
// pages; the classifier's "Page not found" message is reserved for misses
// raised inside handlers.
func (h *Handler) pageNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("The requested page was not found"))
}
