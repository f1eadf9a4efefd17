package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"pcaobdash/internal/platform/config"
	"pcaobdash/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listener lifecycle
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// NewServer reads API_PORT and API_SHUTDOWN_GRACE under cfg
// a bare PORT, as hosting shells set it, wins over API_PORT
func NewServer(cfg config.Conf) *Server {
	addr := config.New().MayAddr("PORT", cfg.MayAddr("API_PORT", ":4000"))
	m := chi.NewRouter()
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("API_SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		srv:   &stdhttp.Server{Handler: m, ReadHeaderTimeout: 10 * time.Second},
	}
}

// Router returns the Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and serves until ctx ends
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx ends, then drains in-flight requests for up to the grace period
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	drain, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(drain); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	log.Info().Msg("http stopped")
	return nil
}
