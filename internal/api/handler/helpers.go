package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arung-agamani/itunesdb/internal/errs"
	"github.com/arung-agamani/itunesdb/internal/model"
)

func parseTrackID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

// statusForError maps a typed library/device error to an HTTP status,
// using errors.As against the struct-per-kind errors in internal/errs
// rather than string matching.
func statusForError(err error) int {
	var notFound *errs.NotFoundError
	var trackNotFound *errs.TrackNotFoundError
	var duplicate *errs.DuplicateError
	var masterProtected *errs.MasterProtectedError
	var alreadyPresent *errs.AlreadyPresentError
	var notPresent *errs.NotPresentError
	var orderMismatch *errs.OrderMismatchError
	var unsupported *errs.UnsupportedFormatError
	var alreadyExists *errs.AlreadyExistsError

	switch {
	case errors.As(err, &notFound), errors.As(err, &trackNotFound), errors.As(err, &notPresent):
		return http.StatusNotFound
	case errors.As(err, &duplicate), errors.As(err, &alreadyPresent), errors.As(err, &alreadyExists):
		return http.StatusConflict
	case errors.As(err, &masterProtected):
		return http.StatusForbidden
	case errors.As(err, &orderMismatch), errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func trackJSON(t *model.Track) map[string]interface{} {
	return map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"artist":      t.Artist,
		"album":       t.Album,
		"albumArtist": t.AlbumArtist,
		"genre":       t.Genre,
		"year":        t.Year,
		"trackNumber": t.TrackNumber,
		"discNumber":  t.DiscNumber,
		"durationMs":  t.DurationMS,
		"bitrate":     t.Bitrate,
		"sampleRate":  t.SampleRate,
		"rating":      t.Rating,
		"path":        t.Path,
	}
}

func tracksJSON(tracks []*model.Track) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, trackJSON(t))
	}
	return out
}

func playlistJSON(p *model.Playlist) map[string]interface{} {
	return map[string]interface{}{
		"id":        p.ID,
		"name":      p.Name,
		"isMaster":  p.IsMaster,
		"isPodcast": p.IsPodcast,
		"sortOrder": p.SortOrder,
		"trackIds":  p.TrackIDs,
	}
}

func playlistsJSON(playlists []*model.Playlist) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, playlistJSON(p))
	}
	return out
}
