package handler

import (
	"context"
	"net/http"

	"github.com/arung-agamani/itunesdb/internal/api/service"
	"github.com/gin-gonic/gin"
)

// SyncHandlers serves the endpoints that place files onto the device and
// register them as tracks.
type SyncHandlers struct {
	svc *service.LibraryService
}

func NewSyncHandlers(svc *service.LibraryService) *SyncHandlers {
	return &SyncHandlers{svc: svc}
}

// Sync handles POST /api/sync. The request body names either a single
// file or a folder to sync; folder syncs stream one JSON line of
// progress per file.
func (h *SyncHandlers) Sync(c *gin.Context) {
	var body struct {
		Path           string `json:"path"`
		Folder         bool   `json:"folder"`
		Recursive      bool   `json:"recursive"`
		CheckDuplicate bool   `json:"checkDuplicate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "path is required"})
		return
	}

	if !body.Folder {
		track, err := h.svc.SyncFile(body.Path, body.CheckDuplicate)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "track": trackJSON(track)})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	flusher, canFlush := c.Writer.(interface{ Flush() })

	results, err := h.svc.SyncFolder(context.Background(), body.Path, body.Recursive, body.CheckDuplicate, func(current, total int, filename string) {
		c.JSON(http.StatusOK, gin.H{"current": current, "total": total, "file": filename})
		c.Writer.WriteString("\n")
		if canFlush {
			flusher.Flush()
		}
	})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "synced": len(results) - failed, "failed": failed})
	c.Writer.WriteString("\n")
}

// RemoveTrack handles DELETE /api/tracks/:id
func (h *SyncHandlers) RemoveTrack(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid track id"})
		return
	}
	if err := h.svc.RemoveTrack(id); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
