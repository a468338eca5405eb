package tracklist

import (
	"strconv"
	"strings"
	"testing"
)

func TestFromDelimited(t *testing.T) {
	tests := []struct {
		name    string
		titles  string
		images  string
		want    []Track
		wantLen int
	}{
		{
			name:   "equal lengths with whitespace",
			titles: " A , B,C ",
			images: "i1, i2 ,i3",
			want: []Track{
				{Title: "A", ArtworkURL: "i1"},
				{Title: "B", ArtworkURL: "i2"},
				{Title: "C", ArtworkURL: "i3"},
			},
		},
		{
			name:   "extra titles get no artwork",
			titles: "A,B,C",
			images: "i1",
			want: []Track{
				{Title: "A", ArtworkURL: "i1"},
				{Title: "B"},
				{Title: "C"},
			},
		},
		{
			name:   "extra artwork ignored",
			titles: "A",
			images: "i1,i2,i3",
			want:   []Track{{Title: "A", ArtworkURL: "i1"}},
		},
		{
			name:   "empty inputs",
			titles: "",
			images: "",
		},
		{
			name:   "empty titles dropped, pairing kept",
			titles: "A,, ,D",
			images: "i1,i2,i3,i4",
			want: []Track{
				{Title: "A", ArtworkURL: "i1"},
				{Title: "D", ArtworkURL: "i4"},
			},
		},
		{
			name:   "only separators",
			titles: ",,,",
			images: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromDelimited(tt.titles, tt.images)
			if l.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", l.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				got, ok := l.At(i)
				if !ok {
					t.Fatalf("At(%d) not found", i)
				}
				if got != want {
					t.Errorf("At(%d) = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestList_AtOutOfRange(t *testing.T) {
	l := FromDelimited("A,B", "i1")

	for _, i := range []int{-1, 2, 100} {
		if _, ok := l.At(i); ok {
			t.Errorf("At(%d) should not be found", i)
		}
		if got := l.ArtworkAt(i); got != "" {
			t.Errorf("ArtworkAt(%d) = %q, want empty", i, got)
		}
	}
	if got := l.ArtworkAt(1); got != "" {
		t.Errorf("ArtworkAt(1) = %q, want empty for missing image", got)
	}
}

func TestList_NilIsEmpty(t *testing.T) {
	var l *List
	if !l.IsEmpty() {
		t.Error("nil list should be empty")
	}
	if l.Tracks() != nil {
		t.Error("nil list Tracks() should be nil")
	}
}

func numbered(n int) *List {
	titles := make([]string, n)
	for i := range n {
		titles[i] = "song" + strconv.Itoa(i)
	}
	return FromDelimited(strings.Join(titles, ","), "")
}

func TestList_Page(t *testing.T) {
	l := numbered(12)

	tests := []struct {
		page      int
		wantStart int
		wantEnd   int
	}{
		{0, 0, 5},
		{1, 5, 10},
		{2, 10, 12},
		{3, 12, 12},
		{-1, 0, 5},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.page), func(t *testing.T) {
			w := l.Page(tt.page, 5)
			if w.Start != tt.wantStart || w.End != tt.wantEnd {
				t.Errorf("Page(%d) = [%d,%d), want [%d,%d)", tt.page, w.Start, w.End, tt.wantStart, tt.wantEnd)
			}
			if len(w.Tracks) != w.Len() {
				t.Errorf("len(Tracks) = %d, want %d", len(w.Tracks), w.Len())
			}
			for i, tr := range w.Tracks {
				want := "song" + strconv.Itoa(w.Start+i)
				if tr.Title != want {
					t.Errorf("Tracks[%d] = %q, want %q", i, tr.Title, want)
				}
			}
		})
	}
}

func TestList_PageCountAndPageOf(t *testing.T) {
	l := numbered(12)
	if got := l.PageCount(5); got != 3 {
		t.Errorf("PageCount(5) = %d, want 3", got)
	}
	if got := numbered(10).PageCount(5); got != 2 {
		t.Errorf("PageCount(5) for 10 = %d, want 2", got)
	}
	if got := FromDelimited("", "").PageCount(5); got != 1 {
		t.Errorf("PageCount on empty = %d, want 1", got)
	}

	for index, want := range map[int]int{-1: 0, 0: 0, 4: 0, 5: 1, 11: 2, 40: 2} {
		if got := l.PageOf(index, 5); got != want {
			t.Errorf("PageOf(%d) = %d, want %d", index, got, want)
		}
	}
}

func TestTrack_SourcePath(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello", "/songs/Hello.mp3"},
		{"Hey Jude", "/songs/Hey%20Jude.mp3"},
		{"AC/DC", "/songs/AC%2FDC.mp3"},
		{"밤편지", "/songs/%EB%B0%A4%ED%8E%B8%EC%A7%80.mp3"},
	}
	for _, tt := range tests {
		if got := (Track{Title: tt.title}).SourcePath(); got != tt.want {
			t.Errorf("SourcePath(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
