package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/wtt/internal/track"
)

// document is the on-disk shape of the store. Instants are epoch seconds;
// optional fields are omitted when absent.
type document struct {
	Sessions []sessionRecord `json:"sessions"`
	// Labels is the registry-era label list. Accepted on load for
	// compatibility, ignored, and never written back.
	Labels []string `json:"labels,omitempty"`
}

type sessionRecord struct {
	ID      string   `json:"id"`
	StartAt int64    `json:"start_at"`
	EndAt   *int64   `json:"end_at,omitempty"`
	Note    string   `json:"note,omitempty"`
	Labels  []string `json:"labels"`
}

// Load reads the document at path into a store. A missing file yields an
// empty store; an unreadable file is an IO failure and a document that is
// not valid JSON of the expected shape is a parse failure.
func Load(path string) (*track.Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return track.NewStore(nil), nil
	}
	if err != nil {
		return nil, track.NewIOError(fmt.Sprintf("could not open the database file %q", path), err)
	}

	if err := vetDocument(path, data); err != nil {
		return nil, track.NewParseError(fmt.Sprintf("could not parse the database file %q", path), err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, track.NewParseError(fmt.Sprintf("could not parse the database file %q", path), err)
	}

	sessions := make([]track.Session, len(doc.Sessions))
	for i, rec := range doc.Sessions {
		sessions[i] = track.Session{
			ID:      rec.ID,
			StartAt: time.Unix(rec.StartAt, 0),
			Note:    rec.Note,
			// Hand-edited or legacy documents may carry labels in a
			// different Unicode composition than the store produces.
			Labels: track.NormalizeLabels(rec.Labels),
		}
		if rec.EndAt != nil {
			end := time.Unix(*rec.EndAt, 0)
			sessions[i].EndAt = &end
		}
	}
	return track.NewStore(sessions), nil
}

// Save serializes the store back to path. The document is written to a temp
// file in the same directory and renamed into place, so a failed write never
// leaves a truncated document behind.
func Save(path string, store *track.Store) error {
	doc := document{Sessions: make([]sessionRecord, 0, store.Len())}
	for _, sess := range store.Sessions() {
		rec := sessionRecord{
			ID:      sess.ID,
			StartAt: sess.StartAt.Unix(),
			Note:    sess.Note,
			Labels:  sess.Labels,
		}
		if rec.Labels == nil {
			rec.Labels = []string{}
		}
		if sess.EndAt != nil {
			end := sess.EndAt.Unix()
			rec.EndAt = &end
		}
		doc.Sessions = append(doc.Sessions, rec)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return track.NewIOError("could not serialize the database", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".wtt-*.json")
	if err != nil {
		return track.NewIOError(fmt.Sprintf("could not create a temp file in %q", dir), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return track.NewIOError(fmt.Sprintf("could not write the database file %q", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return track.NewIOError(fmt.Sprintf("could not write the database file %q", path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return track.NewIOError(fmt.Sprintf("could not replace the database file %q", path), err)
	}
	return nil
}
