package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// signalPath is the relay's only route.
const signalPath = "/signal"

// buildRouter creates the HTTP router with its single route and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Post(signalPath, s.handleSignal)

	return r
}
