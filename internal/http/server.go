package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server owns the listener around a gin engine so callers get explicit
// startup and graceful shutdown instead of Engine.Run's fire-and-forget.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, engine *gin.Engine) *Server {
	return &Server{srv: &http.Server{Addr: addr, Handler: engine}}
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run blocks serving requests until Shutdown is called or the listener
// fails. It reports http.ErrServerClosed after a clean shutdown.
func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
