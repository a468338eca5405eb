package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "turntable"
	dbFileName   = "turntable.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db            *sql.DB
	saveMu        sync.Mutex
	saveTimer     *time.Timer
	pendingVolume *int
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at dbPath, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases shared and serializes writes.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pendingVolume
	m.pendingVolume = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveVolume(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveVolume persists level after a short quiet period, so dragging the
// volume does not write on every step.
func (m *Manager) SaveVolume(level int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingVolume = &level

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pendingVolume
		m.pendingVolume = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveVolume(m.db, *pending)
		}
	})
}

// GetVolume returns the saved volume. ok is false when none was saved.
// A save still waiting for its debounce wins over the stored value.
func (m *Manager) GetVolume() (level int, ok bool, err error) {
	m.saveMu.Lock()
	pending := m.pendingVolume
	m.saveMu.Unlock()
	if pending != nil {
		return *pending, true, nil
	}
	return getVolume(m.db)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
