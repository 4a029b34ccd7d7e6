package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/propwise/propwise/pkg/httputil"
)

// Server is the assembled gateway: the dispatcher's routes wrapped in the
// shared middleware chain
type Server struct {
	handler http.Handler
}

// NewServer wires the dispatcher into a router with request IDs, logging,
// panic recovery and CORS. The CORS middleware answers every pre-flight
// OPTIONS request before routing, so probes succeed on any path.
func NewServer(dispatcher *Dispatcher, log logrus.FieldLogger) *Server {
	router := mux.NewRouter()
	dispatcher.RegisterRoutes(router)

	chain := httputil.Chain(
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(log),
		httputil.RecoveryMiddleware(log),
		httputil.CORSMiddleware,
	)

	return &Server{handler: chain(router)}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
