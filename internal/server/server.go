// Package server exposes the journal stores over REST.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/storage"
)

// Server wires the HTTP routes to the storage layer.
type Server struct {
	log    *zap.Logger
	store  *storage.Store
	router *gin.Engine
	addr   string
}

// New creates the server and registers all routes and middleware.
func New(log *zap.Logger, cfg *config.Config, store *storage.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors())

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateLimitBurst)
	router.Use(rateLimit(limiter))

	s := &Server{
		log:    log,
		store:  store,
		router: router,
		addr:   fmt.Sprintf(":%d", cfg.Server.Port),
	}
	s.registerRoutes()
	return s
}

// Router returns the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	trades := api.Group("/trades")
	trades.GET("", s.handleListTrades)
	trades.GET("/:id", s.handleGetTrade)
	trades.POST("", s.handleCreateTrade)
	trades.POST("/import", s.handleImportTrades)
	trades.PUT("/:id", s.handleUpdateTrade)
	trades.DELETE("/:id", s.handleDeleteTrade)

	journal := api.Group("/journal")
	journal.GET("", s.handleListJournalEntries)
	journal.GET("/:id", s.handleGetJournalEntry)
	journal.GET("/date/:date", s.handleJournalEntriesByDate)
	journal.POST("", s.handleCreateJournalEntry)
	journal.PUT("/:id", s.handleUpdateJournalEntry)
	journal.DELETE("/:id", s.handleDeleteJournalEntry)

	notes := api.Group("/notes")
	notes.GET("", s.handleListNotes)
	notes.GET("/:id", s.handleGetNote)
	notes.GET("/folder/:folder", s.handleNotesByFolder)
	notes.POST("", s.handleCreateNote)
	notes.PUT("/:id", s.handleUpdateNote)
	notes.DELETE("/:id", s.handleDeleteNote)

	playbooks := api.Group("/playbooks")
	playbooks.GET("", s.handleListPlaybooks)
	playbooks.GET("/:id", s.handleGetPlaybook)
	playbooks.POST("", s.handleCreatePlaybook)
	playbooks.PUT("/:id", s.handleUpdatePlaybook)
	playbooks.DELETE("/:id", s.handleDeletePlaybook)

	api.GET("/stats", s.handleStats)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("Starting web server", zap.String("address", s.addr))

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// parseID pulls the :id path parameter; on failure it writes the 400
// response itself and reports false.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
