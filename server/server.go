// Package server exposes a router.Router over HTTP with gin.
//
// Routes:
//
//	GET /healthz                               liveness
//	GET /v1/route?from=&to=&max_cost=&trace=   point-to-point route
//	GET /v1/reach?from=&max_cost=              nodes within a cost ceiling
//	GET /v1/hops?from=&to=                     fewest-arcs path, cost ignored
//	GET /v1/nodes/:id                          one node and its outgoing arcs
//	GET /v1/stats                              graph summary and components
//	GET /metrics                               prometheus exposition
//
// Unknown endpoints in a query answer 404, malformed parameters 400. A route
// that exists in the graph but cannot be reached is a 200 with found=false.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/router"
)

// Server is the HTTP front of one Router.
type Server struct {
	rt     *router.Router
	cfg    config.ServerConfig
	log    *slog.Logger
	engine *gin.Engine
}

// New wires the routes. gatherer backs /metrics; nil omits the endpoint.
// log may be nil.
func New(rt *router.Router, cfg config.ServerConfig, gatherer prometheus.Gatherer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{rt: rt, cfg: cfg, log: log, engine: gin.New()}

	s.engine.Use(gin.Recovery(), s.accessLog())
	if c, ok := corsConfig(cfg.CORSOrigins); ok {
		s.engine.Use(cors.New(c))
	}

	s.engine.GET("/healthz", s.health)
	v1 := s.engine.Group("/v1")
	v1.GET("/route", s.route)
	v1.GET("/reach", s.reach)
	v1.GET("/hops", s.hops)
	v1.GET("/nodes/:id", s.node)
	v1.GET("/stats", s.stats)
	if gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

// Handler returns the gin engine as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// corsConfig reports false when no origin is configured.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c, true
}
