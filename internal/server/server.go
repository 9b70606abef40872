// Package server accepts TCP connections and hands each one to a
// worker pool for request handling. Client and admin traffic listen on
// separate ports with separate pools so a burst of client requests
// never starves the admin surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
	"github.com/YoDarkol23/Absolute-Service/internal/router"
)

// ListenerConfig describes one port: where to bind, how many workers,
// and which routes it serves.
type ListenerConfig struct {
	Name    string // "client" or "admin", used in logs
	Addr    string
	Workers int
	Routes  *router.Router
}

// Server runs one accept loop per configured listener.
type Server struct {
	listeners []ListenerConfig
	log       *slog.Logger
}

// New creates a Server over the given listeners.
func New(log *slog.Logger, listeners ...ListenerConfig) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{listeners: listeners, log: log}
}

// Run binds every listener and serves until ctx is canceled. On
// cancellation the listeners close, the accept loops return, and the
// pools drain their queued connections before Run returns.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, lc := range s.listeners {
		lc := lc
		ln, err := net.Listen("tcp", lc.Addr)
		if err != nil {
			return fmt.Errorf("listen %s (%s): %w", lc.Addr, lc.Name, err)
		}
		pool := NewPool(lc.Workers)
		s.log.Info("listener started", "name", lc.Name, "addr", ln.Addr().String(), "workers", lc.Workers)

		g.Go(func() error {
			<-ctx.Done()
			return ln.Close()
		})
		g.Go(func() error {
			defer pool.Stop()
			return s.acceptLoop(ctx, ln, pool, lc)
		})
	}

	err := g.Wait()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// acceptLoop accepts connections until the listener closes. Accept
// errors other than closure are logged and the loop continues.
func (s *Server) acceptLoop(ctx context.Context, ln net.Listener, pool *Pool, lc ListenerConfig) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			s.log.Error("accept failed", "listener", lc.Name, "error", err)
			continue
		}

		if !pool.Submit(func() { s.serveConn(conn, lc) }) {
			_ = conn.Close()
		}
	}
}

// serveConn handles exactly one connection: parse, dispatch, respond,
// close. Panics from handlers are recovered here and answered with a
// 500 so a broken handler cannot take a worker down.
func (s *Server) serveConn(conn net.Conn, lc ListenerConfig) {
	defer func() { _ = conn.Close() }()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic in request handler", "listener", lc.Name, "panic", r)
			_ = httpx.Write(conn, httpx.Error(http.StatusInternalServerError, "Internal server error occurred"))
		}
	}()

	req, err := httpx.ReadRequest(conn)
	if err != nil {
		if errors.Is(err, httpx.ErrEmptyRequest) {
			return // peer connected and sent nothing; close silently
		}
		s.log.Debug("unparseable request", "listener", lc.Name, "remote", conn.RemoteAddr().String(), "error", err)
		_ = httpx.Write(conn, httpx.Error(http.StatusBadRequest, "Malformed HTTP request"))
		return
	}

	resp := lc.Routes.Dispatch(req)
	s.log.Info("request", "listener", lc.Name, "method", req.Method, "path", req.Path, "status", resp.Status)
	if err := httpx.Write(conn, resp); err != nil {
		s.log.Debug("failed to write response", "listener", lc.Name, "error", err)
	}
}
