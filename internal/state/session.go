package state

import (
	"database/sql"
	"errors"
	"time"
)

// historyLimit bounds the rows kept in play_history.
const historyLimit = 200

// Session is the band that was open when the program last ran.
type Session struct {
	BandID     int
	BandName   string
	TrackTitle string
	UpdatedAt  time.Time
}

// Play is one started song.
type Play struct {
	BandID     int
	BandName   string
	TrackTitle string
	PlayedAt   time.Time
}

// GetSession returns the last session, or nil on first run.
func (m *Manager) GetSession() (*Session, error) {
	row := m.db.QueryRow(`
		SELECT band_id, band_name, track_title, updated_at
		FROM session_state WHERE id = 1
	`)

	var s Session
	var bandName, trackTitle sql.NullString
	var updatedAt int64

	err := row.Scan(&s.BandID, &bandName, &trackTitle, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s.BandName = nullStringValue(bandName)
	s.TrackTitle = nullStringValue(trackTitle)
	s.UpdatedAt = time.Unix(updatedAt, 0)
	return &s, nil
}

// SaveSession records the open band.
func (m *Manager) SaveSession(s Session) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	_, err := m.db.Exec(`
		INSERT INTO session_state (id, band_id, band_name, track_title, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			band_id = excluded.band_id,
			band_name = excluded.band_name,
			track_title = excluded.track_title,
			updated_at = excluded.updated_at
	`, s.BandID, s.BandName, s.TrackTitle, s.UpdatedAt.Unix())
	return err
}

// RecordPlay appends to the play history and updates the session's track,
// trimming the history to its most recent entries.
func (m *Manager) RecordPlay(p Play) error {
	if p.PlayedAt.IsZero() {
		p.PlayedAt = time.Now()
	}
	return withTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO play_history (band_id, band_name, track_title, played_at)
			VALUES (?, ?, ?, ?)
		`, p.BandID, p.BandName, p.TrackTitle, p.PlayedAt.Unix()); err != nil {
			return err
		}

		if _, err := tx.Exec(`
			UPDATE session_state SET track_title = ?, updated_at = ?
			WHERE id = 1 AND band_id = ?
		`, p.TrackTitle, p.PlayedAt.Unix(), p.BandID); err != nil {
			return err
		}

		_, err := tx.Exec(`
			DELETE FROM play_history WHERE id NOT IN (
				SELECT id FROM play_history ORDER BY played_at DESC, id DESC LIMIT ?
			)
		`, historyLimit)
		return err
	})
}

// RecentPlays returns up to limit plays, newest first.
func (m *Manager) RecentPlays(limit int) ([]Play, error) {
	rows, err := m.db.Query(`
		SELECT band_id, band_name, track_title, played_at
		FROM play_history
		ORDER BY played_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var playedAt int64
		if err := rows.Scan(&p.BandID, &p.BandName, &p.TrackTitle, &playedAt); err != nil {
			return nil, err
		}
		p.PlayedAt = time.Unix(playedAt, 0)
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// withTx executes fn within a transaction.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func nullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
