package observability

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// ShutdownFunc is a cleanup function to call during shutdown
type ShutdownFunc func(context.Context) error

// ShutdownManager handles graceful shutdown of the gateway's servers and
// its store connections
type ShutdownManager struct {
	log     logrus.FieldLogger
	servers []*http.Server
	funcs   []ShutdownFunc
	timeout time.Duration
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(log logrus.FieldLogger, timeout time.Duration) *ShutdownManager {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ShutdownManager{log: log, timeout: timeout}
}

// RegisterServer registers an HTTP server to shut down gracefully
func (sm *ShutdownManager) RegisterServer(server *http.Server) {
	sm.servers = append(sm.servers, server)
}

// RegisterFunc registers a cleanup function to call during shutdown
func (sm *ShutdownManager) RegisterFunc(fn ShutdownFunc) {
	sm.funcs = append(sm.funcs, fn)
}

// Wait blocks until SIGINT or SIGTERM, then drains servers and runs the
// registered cleanup functions within the shutdown timeout
func (sm *ShutdownManager) Wait() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	sm.log.WithField("signal", sig.String()).Info("starting graceful shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
	defer cancel()

	for _, server := range sm.servers {
		if err := server.Shutdown(ctx); err != nil {
			sm.log.WithError(err).Error("server shutdown error")
		}
	}

	for _, fn := range sm.funcs {
		if err := fn(ctx); err != nil {
			sm.log.WithError(err).Error("shutdown cleanup error")
		}
	}

	sm.log.Info("shutdown complete")
}
