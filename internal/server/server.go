// Package server exposes a galaxy map and a shared path explorer over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
	"github.com/katalvlaran/starpath/galaxy"
)

// Server routes HTTP requests to the map, the explorer and a pathfinder.
type Server struct {
	galaxy     *galaxy.Map
	explorer   *explorer.Explorer
	pathfinder astar.Pathfinder
	logger     *slog.Logger
	router     *gin.Engine
}

// New wires the routes. A nil pathfinder defaults to astar.New and a nil
// logger discards output.
func New(m *galaxy.Map, e *explorer.Explorer, pf astar.Pathfinder, logger *slog.Logger) *Server {
	if pf == nil {
		pf = astar.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{galaxy: m, explorer: e, pathfinder: pf, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), CORSMiddleware())

	r.GET("/healthz", s.health)
	r.GET("/systems", s.listSystems)
	r.GET("/systems/:id/distances", s.distances)
	r.GET("/systems/:id/jumps", s.jumps)
	r.POST("/systems/:id/select", s.selectSystem)
	r.GET("/edges", s.listEdges)
	r.GET("/path", s.currentPath)
	r.DELETE("/selection", s.resetSelection)
	r.GET("/route", s.route)

	s.router = r
	return s
}

// Handler returns the router for use with net/http or httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// CORSMiddleware allows browser clients from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
