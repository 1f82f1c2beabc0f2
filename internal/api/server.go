// Package api wires the management API's handlers, service, and auth
// middleware into a gin.Engine and runs it behind an http.Server with
// graceful shutdown.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/arung-agamani/itunesdb/internal/api/handler"
	"github.com/arung-agamani/itunesdb/internal/api/service"
	"github.com/arung-agamani/itunesdb/internal/auth"
	"github.com/gin-gonic/gin"
)

// Server hosts the management API over HTTP.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the gin.Engine and registers every route named in the
// management API's route table. Mutating routes require a valid bearer
// token; reads are open to anything that can reach the listener.
func NewServer(addr string, svc *service.LibraryService, a *auth.Auth) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())

	libraryH := handler.NewLibraryHandlers(svc)
	playlistH := handler.NewPlaylistHandlers(svc)
	syncH := handler.NewSyncHandlers(svc)
	authH := handler.NewAuthHandlers(a)

	r.GET("/api/library", libraryH.GetSummary)
	r.GET("/api/tracks", libraryH.ListTracks)

	r.GET("/api/playlists", playlistH.List)

	r.POST("/api/auth/login", authH.Login)

	authed := r.Group("/api")
	authed.Use(authRequired(a))
	{
		authed.GET("/auth/verify", authH.VerifyToken)

		authed.POST("/playlists", playlistH.Create)
		authed.DELETE("/playlists/:id", playlistH.Delete)
		authed.PATCH("/playlists/:id", playlistH.Rename)
		authed.POST("/playlists/:id/tracks", playlistH.AddTrack)
		authed.DELETE("/playlists/:id/tracks/:trackId", playlistH.RemoveTrack)
		authed.PUT("/playlists/:id/order", playlistH.Reorder)
		authed.POST("/playlists/:id/duplicate", playlistH.Duplicate)

		authed.POST("/sync", syncH.Sync)
		authed.DELETE("/tracks/:id", syncH.RemoveTrack)
		authed.POST("/save", libraryH.Save)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:           addr,
			Handler:        r,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within a 5 second deadline.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		slog.Info("management API starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
