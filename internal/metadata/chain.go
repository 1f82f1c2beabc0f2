package metadata

// Chain composes providers left to right: the first provider's result
// seeds the record, and each subsequent provider only fills in fields
// still at their zero value. This lets a tag-reading provider and a
// duration-probing provider cooperate without either needing to know
// about the other.
type Chain struct {
	Providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{Providers: providers}
}

func (c *Chain) Read(path string) Record {
	var rec Record
	first := true
	for _, p := range c.Providers {
		next := p.Read(path)
		if first {
			rec = next
			first = false
			continue
		}
		mergeZero(&rec, next)
	}
	if len(c.Providers) > 0 && rec.SampleRate == 0 {
		rec.SampleRate = defaultSampleRate
	}
	return rec
}

func mergeZero(dst *Record, src Record) {
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if dst.Artist == "" {
		dst.Artist = src.Artist
	}
	if dst.Album == "" {
		dst.Album = src.Album
	}
	if dst.AlbumArtist == "" {
		dst.AlbumArtist = src.AlbumArtist
	}
	if dst.Genre == "" {
		dst.Genre = src.Genre
	}
	if dst.Composer == "" {
		dst.Composer = src.Composer
	}
	if dst.Comment == "" {
		dst.Comment = src.Comment
	}
	if dst.Year == 0 {
		dst.Year = src.Year
	}
	if dst.TrackNumber == 0 {
		dst.TrackNumber = src.TrackNumber
	}
	if dst.TotalTracks == 0 {
		dst.TotalTracks = src.TotalTracks
	}
	if dst.DiscNumber == 0 {
		dst.DiscNumber = src.DiscNumber
	}
	if dst.TotalDiscs == 0 {
		dst.TotalDiscs = src.TotalDiscs
	}
	if dst.DurationMS == 0 {
		dst.DurationMS = src.DurationMS
	}
	if dst.Bitrate == 0 {
		dst.Bitrate = src.Bitrate
	}
	if dst.SampleRate == 0 {
		dst.SampleRate = src.SampleRate
	}
}
