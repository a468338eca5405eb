package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Band    string
	Song    string
	Disc    string
	Play    string
	Pause   string
	Back    string
	Forward string
	Volume  string
	Muted   string
	List    string
	Today   string
}

var (
	nerdIcons = Icons{
		Band:    "\uf0c0 ",    // nf-fa-users
		Song:    "\uf001 ",    // nf-fa-music
		Disc:    "\U000f0025", // nf-md-album
		Play:    "\uf04b",     // nf-fa-play
		Pause:   "\uf04c",     // nf-fa-pause
		Back:    "\uf048",     // nf-fa-step_backward
		Forward: "\uf051",     // nf-fa-step_forward
		Volume:  "\uf028",     // nf-fa-volume_up
		Muted:   "\uf026",     // nf-fa-volume_off
		List:    "\uf03a",     // nf-fa-list
		Today:   "\uf073 ",    // nf-fa-calendar
	}

	unicodeIcons = Icons{
		Band:    "🎸 ",
		Song:    "🎵 ",
		Disc:    "💿",
		Play:    "▶",
		Pause:   "⏸",
		Back:    "⏮",
		Forward: "⏭",
		Volume:  "🔊",
		Muted:   "🔇",
		List:    "☰",
		Today:   "📅 ",
	}

	noneIcons = Icons{
		Band:    "",
		Song:    "",
		Disc:    "(o)",
		Play:    ">",
		Pause:   "||",
		Back:    "|<",
		Forward: ">|",
		Volume:  "vol",
		Muted:   "mute",
		List:    "=",
		Today:   "* ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatBand formats a band name with the appropriate icon.
func FormatBand(name string) string {
	return current.Band + name
}

// FormatSong formats a song title with the appropriate icon.
func FormatSong(title string) string {
	return current.Song + title
}

// FormatToday marks the band picked for today.
func FormatToday(name string) string {
	return current.Today + name
}

// Disc returns the record icon.
func Disc() string {
	return current.Disc
}

// PlayPause returns the icon for the transport button: pause while
// playing, play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Back returns the previous-song icon.
func Back() string {
	return current.Back
}

// Forward returns the next-song icon.
func Forward() string {
	return current.Forward
}

// Volume returns the volume icon, muted at level 0.
func Volume(level int) string {
	if level <= 0 {
		return current.Muted
	}
	return current.Volume
}

// List returns the song menu icon.
func List() string {
	return current.List
}
