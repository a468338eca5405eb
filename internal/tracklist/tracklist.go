// Package tracklist holds the ordered song list shown by the turntable widget.
package tracklist

import (
	"net/url"
	"strings"
)

// DefaultPageLength is the number of songs shown per page of the song menu.
const DefaultPageLength = 5

// Track is one playable song with its optional carousel artwork.
type Track struct {
	Title      string
	ArtworkURL string // empty when the band record has no image for this song
}

// HasArtwork reports whether the track has an associated image.
func (t Track) HasArtwork() bool {
	return t.ArtworkURL != ""
}

// SourcePath returns the path of the audio resource for the track.
// The title is escaped as a single path segment.
func (t Track) SourcePath() string {
	return "/songs/" + url.PathEscape(t.Title) + ".mp3"
}

// List is an immutable ordered list of tracks.
type List struct {
	tracks []Track
}

// New creates a list from already parsed tracks.
func New(tracks ...Track) *List {
	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		t.Title = strings.TrimSpace(t.Title)
		t.ArtworkURL = strings.TrimSpace(t.ArtworkURL)
		if t.Title == "" {
			continue
		}
		out = append(out, t)
	}
	return &List{tracks: out}
}

// FromDelimited builds a list from the comma separated title and artwork
// strings of a band record. Entries are zipped by position before empty titles
// are dropped, so extra titles get no artwork and extra images are ignored.
func FromDelimited(titles, artworkURLs string) *List {
	names := splitTrim(titles)
	images := splitTrim(artworkURLs)

	tracks := make([]Track, 0, len(names))
	for i, name := range names {
		t := Track{Title: name}
		if i < len(images) {
			t.ArtworkURL = images[i]
		}
		tracks = append(tracks, t)
	}
	return New(tracks...)
}

func splitTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Len returns the number of tracks.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.tracks)
}

// IsEmpty returns true if the list has no tracks.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the track at index i.
func (l *List) At(i int) (Track, bool) {
	if i < 0 || i >= l.Len() {
		return Track{}, false
	}
	return l.tracks[i], true
}

// ArtworkAt returns the artwork URL at index i, or "" when out of range.
func (l *List) ArtworkAt(i int) string {
	t, ok := l.At(i)
	if !ok {
		return ""
	}
	return t.ArtworkURL
}

// Tracks returns a copy of all tracks.
func (l *List) Tracks() []Track {
	if l == nil {
		return nil
	}
	out := make([]Track, len(l.tracks))
	copy(out, l.tracks)
	return out
}

// Window is one page of the song menu.
// Start and End are absolute indexes, End exclusive.
type Window struct {
	Start  int
	End    int
	Tracks []Track
}

// Len returns the number of tracks in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Page returns the slice [pageIndex*pageLength, pageIndex*pageLength+pageLength)
// clamped to the list bounds.
func (l *List) Page(pageIndex, pageLength int) Window {
	if pageLength <= 0 {
		pageLength = DefaultPageLength
	}
	n := l.Len()
	start := min(max(pageIndex, 0)*pageLength, n)
	end := min(start+pageLength, n)

	w := Window{Start: start, End: end}
	if end > start {
		w.Tracks = make([]Track, end-start)
		copy(w.Tracks, l.tracks[start:end])
	}
	return w
}

// PageCount returns the number of pages, at least 1.
func (l *List) PageCount(pageLength int) int {
	if pageLength <= 0 {
		pageLength = DefaultPageLength
	}
	n := l.Len()
	if n == 0 {
		return 1
	}
	return (n + pageLength - 1) / pageLength
}

// PageOf returns the page containing index.
func (l *List) PageOf(index, pageLength int) int {
	if pageLength <= 0 {
		pageLength = DefaultPageLength
	}
	if index < 0 {
		return 0
	}
	return min(index/pageLength, l.PageCount(pageLength)-1)
}
