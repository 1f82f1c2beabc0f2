package handler

import (
	"net/http"

	"github.com/arung-agamani/itunesdb/internal/api/service"
	"github.com/gin-gonic/gin"
)

// LibraryHandlers serves the read-only library summary and track list.
type LibraryHandlers struct {
	svc *service.LibraryService
}

func NewLibraryHandlers(svc *service.LibraryService) *LibraryHandlers {
	return &LibraryHandlers{svc: svc}
}

// GetSummary handles GET /api/library
func (h *LibraryHandlers) GetSummary(c *gin.Context) {
	s := h.svc.Summary()
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"trackCount":    s.TrackCount,
		"playlistCount": s.PlaylistCount,
		"masterId":      s.MasterID,
	})
}

// ListTracks handles GET /api/tracks
func (h *LibraryHandlers) ListTracks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"tracks": tracksJSON(h.svc.Tracks()),
	})
}

// Save handles POST /api/save
func (h *LibraryHandlers) Save(c *gin.Context) {
	if err := h.svc.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
