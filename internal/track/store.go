package track

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory form of the whole persisted document.
//
// A Store is built from a loaded document, mutated by exactly one operation
// per command invocation, saved and discarded. It is not safe for concurrent
// use and does not need to be: invocations against the same backing file are
// assumed non-overlapping.
type Store struct {
	sessions []Session
	now      func() time.Time
}

// NewStore builds a store over the given sessions, which are kept in
// insertion order. The slice is owned by the store after this call.
func NewStore(sessions []Session) *Store {
	return &Store{
		sessions: sessions,
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock used to stamp start/end instants.
// Intended for tests; the default is time.Now.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Sessions returns the stored sessions in insertion order.
// The persistence layer uses this to serialize the document.
func (s *Store) Sessions() []Session {
	return s.sessions
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// indexByID finds the position of a session by id, or -1.
// Mutations go through the returned index rather than an aliased reference.
func (s *Store) indexByID(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// indexOfLatestRunning finds the running session with the greatest StartAt,
// or -1 if no session is running. Multiple running sessions are permitted;
// default end-target resolution picks the newest.
func (s *Store) indexOfLatestRunning() int {
	best := -1
	for i := range s.sessions {
		if !s.sessions[i].Running() {
			continue
		}
		if best == -1 || s.sessions[i].StartAt.After(s.sessions[best].StartAt) {
			best = i
		}
	}
	return best
}

// StartSession opens a new session carrying the given labels, stamped with
// the current local instant, and returns a copy of it. Labels need no
// prior registration, so starting cannot fail.
func (s *Store) StartSession(labels []string) Session {
	sess := Session{
		ID:      uuid.NewString(),
		StartAt: s.now().Truncate(time.Second),
		Labels:  NormalizeLabels(labels),
	}
	s.sessions = append(s.sessions, sess)
	return sess
}

// EndSession closes a session and overwrites its note with the given text.
// Passing an empty note clears any prior note.
//
// With a non-empty id the session is looked up directly: an unknown id is a
// not-found error and an already-ended session a conflict. With an empty id
// the target is the running session with the latest start; if nothing is
// running a distinct no-running-session error is returned.
func (s *Store) EndSession(id, note string) (Session, error) {
	var i int
	if id != "" {
		i = s.indexByID(id)
		if i == -1 {
			return Session{}, NewNotFoundError(id)
		}
		if !s.sessions[i].Running() {
			return Session{}, NewAlreadyEndedError(id)
		}
	} else {
		i = s.indexOfLatestRunning()
		if i == -1 {
			return Session{}, NewNoRunningSessionError()
		}
	}

	end := s.now().Truncate(time.Second)
	s.sessions[i].EndAt = &end
	s.sessions[i].Note = note
	return s.sessions[i], nil
}

// UpdateNote replaces a session's note unconditionally. The session may be
// running or ended.
func (s *Store) UpdateNote(id, note string) (Session, error) {
	i := s.indexByID(id)
	if i == -1 {
		return Session{}, NewNotFoundError(id)
	}
	s.sessions[i].Note = note
	return s.sessions[i], nil
}

// Labels returns the derived label set: the union of every session's label
// list, deduplicated and sorted. A label exists only as long as at least one
// session references it.
func (s *Store) Labels() []string {
	seen := map[string]struct{}{}
	for i := range s.sessions {
		for _, l := range s.sessions[i].Labels {
			seen[l] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// RemoveLabel strips the given label from every session's label list and
// returns the number of sessions actually modified. Removing a label that
// appears nowhere is not an error. Sessions left with an empty label list
// remain in the store.
func (s *Store) RemoveLabel(label string) int {
	label = NormalizeLabel(label)
	changed := 0
	for i := range s.sessions {
		kept := s.sessions[i].Labels[:0:0]
		for _, l := range s.sessions[i].Labels {
			if l != label {
				kept = append(kept, l)
			}
		}
		if len(kept) != len(s.sessions[i].Labels) {
			s.sessions[i].Labels = kept
			changed++
		}
	}
	return changed
}
