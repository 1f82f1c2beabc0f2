package handler

import (
	"net/http"

	"github.com/arung-agamani/itunesdb/internal/api/service"
	"github.com/arung-agamani/itunesdb/internal/model"
	"github.com/gin-gonic/gin"
)

// PlaylistHandlers serves playlist CRUD and track-membership endpoints,
// one per Mutation API operation.
type PlaylistHandlers struct {
	svc *service.LibraryService
}

func NewPlaylistHandlers(svc *service.LibraryService) *PlaylistHandlers {
	return &PlaylistHandlers{svc: svc}
}

// List handles GET /api/playlists
func (h *PlaylistHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"playlists": playlistsJSON(h.svc.Playlists()),
	})
}

// Create handles POST /api/playlists
func (h *PlaylistHandlers) Create(c *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		SortOrder uint32 `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "name is required"})
		return
	}
	sortOrder := model.SortOrder(body.SortOrder)
	if sortOrder == 0 {
		sortOrder = model.SortOrderManual
	}
	p, err := h.svc.CreatePlaylist(body.Name, sortOrder)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "playlist": playlistJSON(p)})
}

// Delete handles DELETE /api/playlists/:id
func (h *PlaylistHandlers) Delete(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	if err := h.svc.DeletePlaylist(id); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Rename handles PATCH /api/playlists/:id
func (h *PlaylistHandlers) Rename(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "name is required"})
		return
	}
	if err := h.svc.RenamePlaylist(id, body.Name); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddTrack handles POST /api/playlists/:id/tracks
func (h *PlaylistHandlers) AddTrack(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	var body struct {
		TrackID  uint32 `json:"trackId"`
		Position *int   `json:"position"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request body"})
		return
	}
	if err := h.svc.AddTrackToPlaylist(id, body.TrackID, body.Position); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RemoveTrack handles DELETE /api/playlists/:id/tracks/:trackId
func (h *PlaylistHandlers) RemoveTrack(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	trackID, err := parseTrackID(c.Param("trackId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid track id"})
		return
	}
	if err := h.svc.RemoveTrackFromPlaylist(id, trackID); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reorder handles PUT /api/playlists/:id/order
func (h *PlaylistHandlers) Reorder(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	var body struct {
		TrackIDs []uint32 `json:"trackIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request body"})
		return
	}
	if err := h.svc.ReorderPlaylist(id, body.TrackIDs); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Duplicate handles POST /api/playlists/:id/duplicate
func (h *PlaylistHandlers) Duplicate(c *gin.Context) {
	id, err := parseTrackID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid playlist id"})
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "name is required"})
		return
	}
	p, err := h.svc.DuplicatePlaylist(id, body.Name)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "playlist": playlistJSON(p)})
}
