package bandapi

import (
	"strings"
	"time"

	"github.com/llehouerou/turntable/internal/tracklist"
)

// Band is the band record served by the site.
// List-like fields are comma separated strings.
type Band struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Photo         string  `json:"photo"`
	FormationDate string  `json:"formation_date"`
	DebutDate     string  `json:"debut_date"`
	Genre         []Genre `json:"genre"`
	Members       string  `json:"members"`
	MemberPhotos  string  `json:"member_photos"`
	MemberInfo    string  `json:"member_info"`
	HitSongs      string  `json:"hit_songs"`
	MusicPhoto    string  `json:"music_photo"`
	Introduction  string  `json:"introduction"`
	Albums        string  `json:"albums"`
	Awards        string  `json:"awards"`
}

// Genre is a music genre tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tracks builds the song list of the band's turntable.
func (b *Band) Tracks() *tracklist.List {
	return tracklist.FromDelimited(b.HitSongs, b.MusicPhoto)
}

// GenreNames returns the genre names in order.
func (b *Band) GenreNames() []string {
	names := make([]string, 0, len(b.Genre))
	for _, g := range b.Genre {
		names = append(names, g.Name)
	}
	return names
}

// MemberNames splits the members field.
func (b *Band) MemberNames() []string {
	return splitNonEmpty(b.Members, ",")
}

// MemberDetails splits the member info field, which uses "/" between members.
func (b *Band) MemberDetails() []string {
	return splitNonEmpty(b.MemberInfo, "/")
}

// Photos splits the photo field.
func (b *Band) Photos() []string {
	return splitNonEmpty(b.Photo, ",")
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for part := range strings.SplitSeq(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ForToday picks the band of the day among n bands: the sum of the bytes of
// the day's YYYY-MM-DD date (UTC) modulo n. It returns -1 when n <= 0.
func ForToday(n int, day time.Time) int {
	if n <= 0 {
		return -1
	}
	sum := 0
	for _, c := range []byte(day.UTC().Format(time.DateOnly)) {
		sum += int(c)
	}
	return sum % n
}
