// Package server exposes the search pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsearch/justsearch/log"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/metrics"
	"github.com/justsearch/justsearch/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// Searcher is implemented by *search.Searcher.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (iter.Seq[*media.Candidate], error)
}

type Config struct {
	Addr string
	// RateLimit is the number of requests per second; zero disables limiting.
	RateLimit int
	Lang      string
	Country   string
}

type Server struct {
	cfg      Config
	searcher Searcher
	engine   *gin.Engine
	registry *prometheus.Registry
}

func New(cfg Config, searcher Searcher) *Server {
	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		cfg:      cfg,
		searcher: searcher,
		engine:   gin.New(),
		registry: registry,
	}

	s.engine.Use(gin.Recovery(), requestID(), accessLog())
	s.engine.GET("/healthz", s.healthz)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := s.engine.Group("/api")
	if cfg.RateLimit > 0 {
		api.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)))
	}
	api.GET("/search", s.search)

	return s
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server: listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
