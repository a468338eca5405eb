package turntable

// Slide is the carousel transition direction of the last skip.
type Slide int

const (
	Forward Slide = iota
	Backward
)

func (s Slide) String() string {
	switch s {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Phase is the controller state derived from the snapshot fields.
type Phase int

const (
	Idle Phase = iota
	Paused
	Playing
	Disposed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// NoTrack is the CurrentIndex of an empty track list.
const NoTrack = -1

// Carousel geometry of the artwork that is not current.
const (
	SlideOffset   = 30
	InactiveAngle = 20
)

// State is an immutable snapshot of a controller.
type State struct {
	CurrentIndex  int
	IsPlaying     bool
	Starting      bool // a play is in flight
	Volume        int
	RotationAngle int64
	Slide         Slide
	Page          int
	PageLength    int
	PageCount     int
	TrackCount    int
	Gen           uint64
	LastError     error

	loaded   bool
	disposed bool
}

// Phase derives Idle, Paused, Playing or Disposed.
func (s State) Phase() Phase {
	switch {
	case s.disposed:
		return Disposed
	case s.IsPlaying:
		return Playing
	case s.loaded:
		return Paused
	default:
		return Idle
	}
}

// HasTrack reports whether CurrentIndex designates a track.
func (s State) HasTrack() bool {
	return s.CurrentIndex != NoTrack
}

// DiscAngle is the rotation folded into [0, 360).
func (s State) DiscAngle() int {
	return int(s.RotationAngle % 360)
}

// Frame is the carousel placement of one artwork.
type Frame struct {
	Offset  int // percent of the disc width
	Angle   int64
	Visible bool
	Current bool
}

// Frame places the artwork of track i. The current artwork is centered and
// carries the disc rotation; the others wait off-center on the side the
// last skip came from.
func (s State) Frame(i int) Frame {
	if i == s.CurrentIndex && s.HasTrack() {
		return Frame{Offset: 0, Angle: s.RotationAngle, Visible: true, Current: true}
	}
	offset := SlideOffset
	if s.Slide == Backward {
		offset = -SlideOffset
	}
	return Frame{Offset: offset, Angle: InactiveAngle}
}

// OnPage reports whether track i lies in the visible page of the song menu.
func (s State) OnPage(i int) bool {
	start := s.Page * s.PageLength
	return i >= start && i < start+s.PageLength && i < s.TrackCount
}
