// Package export dumps the session log into a standalone SQLite file so the
// history can be inspected with ordinary SQL tooling. The export is one-way:
// the JSON document stays the only store, and an exported file is never read
// back by the tracker.
package export

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/wtt/internal/track"
)

//go:embed schema.sql
var schemaSQL string

// ToSQLite writes every session to a SQLite database at path, creating the
// file if needed and replacing previously exported rows. Returns the number
// of sessions written.
func ToSQLite(path string, sessions []track.Session) (int, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, track.NewIOError(fmt.Sprintf("could not open the export file %q", path), err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return 0, track.NewIOError(fmt.Sprintf("could not open the export file %q", path), err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return 0, track.NewIOError("could not configure the export file", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return 0, track.NewIOError("could not apply the export schema", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, track.NewIOError("could not begin the export transaction", err)
	}
	defer tx.Rollback()

	// Re-exporting to an existing file replaces the previous dump.
	if _, err := tx.Exec("DELETE FROM session_labels"); err != nil {
		return 0, track.NewIOError("could not clear prior export rows", err)
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return 0, track.NewIOError("could not clear prior export rows", err)
	}

	insertSession, err := tx.Prepare(
		"INSERT INTO sessions (id, start_at, end_at, minutes, note) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, track.NewIOError("could not prepare the session insert", err)
	}
	defer insertSession.Close()

	insertLabel, err := tx.Prepare(
		"INSERT INTO session_labels (session_id, label) VALUES (?, ?)")
	if err != nil {
		return 0, track.NewIOError("could not prepare the label insert", err)
	}
	defer insertLabel.Close()

	now := time.Now()
	for i := range sessions {
		sess := &sessions[i]
		var endAt, minutes any
		if sess.EndAt != nil {
			endAt = sess.EndAt.Unix()
			minutes = sess.Minutes(now)
		}
		var note any
		if sess.Note != "" {
			note = sess.Note
		}
		if _, err := insertSession.Exec(sess.ID, sess.StartAt.Unix(), endAt, minutes, note); err != nil {
			return 0, track.NewIOError(fmt.Sprintf("could not export session %s", sess.ID), err)
		}
		for _, label := range sess.Labels {
			if _, err := insertLabel.Exec(sess.ID, label); err != nil {
				return 0, track.NewIOError(fmt.Sprintf("could not export labels for session %s", sess.ID), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, track.NewIOError("could not commit the export transaction", err)
	}
	return len(sessions), nil
}
