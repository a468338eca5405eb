package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetVolume() (level int, ok bool, err error)
	SaveVolume(level int)
	GetSession() (*Session, error)
	SaveSession(s Session) error
	RecordPlay(p Play) error
	RecentPlays(limit int) ([]Play, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
