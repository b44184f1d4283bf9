package track

import (
	"sort"
	"time"
)

// Filter selects sessions along three independent axes. A nil bound or an
// empty label list leaves that axis unconstrained.
type Filter struct {
	// From is an inclusive lower bound on StartAt.
	From *time.Time

	// To is an inclusive upper bound on EndAt. A still-running session has
	// no end instant and is never excluded by this bound.
	To *time.Time

	// Labels matches sessions carrying at least one of the given labels.
	Labels []string
}

// matches applies all three predicates; a session must pass every axis.
func (f Filter) matches(sess *Session) bool {
	if f.From != nil && sess.StartAt.Before(*f.From) {
		return false
	}
	if f.To != nil && sess.EndAt != nil && sess.EndAt.After(*f.To) {
		return false
	}
	if len(f.Labels) > 0 {
		any := false
		for _, l := range f.Labels {
			if sess.HasLabel(NormalizeLabel(l)) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

// GetAllSessions returns the sessions matching the filter, sorted ascending
// by StartAt. The sort is stable, so equal start instants keep their
// insertion order.
func (s *Store) GetAllSessions(f Filter) []Session {
	out := []Session{}
	for i := range s.sessions {
		if f.matches(&s.sessions[i]) {
			out = append(out, s.sessions[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out
}
