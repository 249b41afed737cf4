// Package server owns the HTTP listener lifecycle: nothing listens until
// Start is called, and Stop drains in-flight requests.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrAlreadyStarted = errors.New("server already started")

type Option func(*Server)

// WithTLS serves TLS 1.3 when both files exist; otherwise plaintext.
func WithTLS(certFile, keyFile string) Option {
	return func(s *Server) { s.certFile, s.keyFile = certFile, keyFile }
}

// WithService tags log lines with the service name.
func WithService(name string) Option { return func(s *Server) { s.service = name } }

type Server struct {
	srv      *http.Server
	log      *zap.Logger
	service  string
	certFile string
	keyFile  string

	mu   sync.Mutex
	ln   net.Listener
	done chan struct{}
}

func New(addr string, h http.Handler, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start binds the listener before returning, so a bad address is reported
// to the caller, then serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.done = make(chan struct{})

	useTLS := fileExists(s.certFile) && fileExists(s.keyFile)
	fields := []zap.Field{zap.String("service", s.service), zap.String("addr", ln.Addr().String())}

	if useTLS {
		s.srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13}
		s.log.Info("server starting (TLS)", append(fields, zap.String("cert", s.certFile))...)
	} else {
		s.log.Info("server starting (PLAINTEXT)", fields...)
	}

	go func() {
		defer close(s.done)
		var err error
		if useTLS {
			err = s.srv.ServeTLS(ln, s.certFile, s.keyFile)
		} else {
			err = s.srv.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server failed", zap.String("service", s.service), zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts down within ctx. Calling Stop on a server that was
// never started is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	ln, done := s.ln, s.done
	s.mu.Unlock()
	if ln == nil {
		return nil
	}

	s.log.Info("server stopping", zap.String("service", s.service))
	err := s.srv.Shutdown(ctx)
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// Addr reports the bound address once started, or the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
