package server

import (
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/simonvc/minibank/internal/bank"
)

type Server struct {
	account    *bank.Locked
	router     chi.Router
	addr       string
	requestLog bool
}

type Option func(*Server)

// WithRequestLog logs every request to stdout.
func WithRequestLog() Option {
	return func(s *Server) {
		s.requestLog = true
	}
}

func New(acct *bank.Locked, addr string, opts ...Option) *Server {
	r := chi.NewRouter()
	s := &Server{account: acct, router: r, addr: addr}
	for _, opt := range opts {
		opt(s)
	}

	if s.requestLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Get("/account", s.getAccount)
		r.Get("/account/balance", s.getBalance)
		r.Post("/account/deposit", s.deposit)
		r.Post("/account/withdraw", s.withdraw)
		r.Post("/account/close", s.closeAccount)
	})

	return s
}

func (s *Server) ListenAndServe() error {
	log.Printf("minibank server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	log.Printf("minibank server listening on %s", ln.Addr())
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
