// Package stub is an in-memory development backend implementing the
// DocuScope HTTP interface: auth, document upload, list, delete, health.
// It exists so the client can run and be integration-tested without the
// real service; nothing is persisted.
package stub

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/docuscope/docuscope-cli/internal/logging"
	"github.com/gin-gonic/gin"
)

type user struct {
	id           string
	name         string
	email        string
	passwordHash []byte
}

// Server holds the stub's in-memory state. Gin serves requests
// concurrently, so state access is guarded.
type Server struct {
	secret []byte
	logger logging.Logger

	mu    sync.Mutex
	users map[string]user // keyed by email
	docs  []models.DocumentRecord
}

func NewServer(secret string, logger logging.Logger) *Server {
	return &Server{
		secret: []byte(secret),
		logger: logger.With("component", "stub"),
		users:  make(map[string]user),
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/signup", s.handleSignUp)
	r.POST("/auth/login", s.handleLogin)

	authed := r.Group("/", s.requireUser)
	authed.POST("/documents/upload", s.handleUpload)
	authed.GET("/documents", s.handleList)
	authed.DELETE("/documents/:id", s.handleDelete)

	return r
}

// Run serves the stub until ctx is cancelled.
func Run(ctx context.Context, addr, secret string, logger logging.Logger) error {
	s := NewServer(secret, logger)

	srv := &http.Server{Addr: addr, Handler: s.Router()}
	errCh := make(chan error, 1)

	go func() {
		logger.Info(ctx, "stub server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
