package track

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Session is one tracked interval of work.
//
// The id is assigned at creation and never changes. StartAt is set once at
// creation. EndAt stays nil while the session is running and is set exactly
// once; a session with a non-nil EndAt is terminal for that field. Note and
// Labels carry no identity of their own.
type Session struct {
	ID      string
	StartAt time.Time
	EndAt   *time.Time
	Note    string
	Labels  []string
}

// Running reports whether the session has no end instant yet.
func (s *Session) Running() bool {
	return s.EndAt == nil
}

// HasLabel reports whether the session carries the given (normalized) label.
func (s *Session) HasLabel(label string) bool {
	for _, l := range s.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Minutes returns the session's duration in whole minutes, truncating any
// fractional minute. For a running session the duration is measured against
// the supplied now instant.
func (s *Session) Minutes(now time.Time) int64 {
	end := now
	if s.EndAt != nil {
		end = *s.EndAt
	}
	d := end.Sub(s.StartAt)
	if d < 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// NormalizeLabel puts a label name into NFC form so that equality holds
// across input methods that produce different Unicode compositions.
func NormalizeLabel(label string) string {
	return norm.NFC.String(label)
}

// NormalizeLabels normalizes every name in place-order, without deduplication.
func NormalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = NormalizeLabel(l)
	}
	return out
}
