package track

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureSessions builds a store with sessions at known instants:
//
//	s1  starts day 1, ends day 1, labels [alpha]
//	s2  starts day 2, ends day 4, labels [beta]
//	s3  starts day 3, running,    labels [alpha beta]
//	s4  starts day 5, ends day 5, no labels
//
// Insertion order is deliberately not start order (s2 before s1).
func fixtureSessions() *Store {
	day := func(d, hour int) time.Time {
		return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
	}
	end := func(t time.Time) *time.Time { return &t }

	return NewStore([]Session{
		{ID: "s2", StartAt: day(2, 9), EndAt: end(day(4, 17)), Labels: []string{"beta"}},
		{ID: "s1", StartAt: day(1, 9), EndAt: end(day(1, 17)), Labels: []string{"alpha"}},
		{ID: "s3", StartAt: day(3, 9), Labels: []string{"alpha", "beta"}},
		{ID: "s4", StartAt: day(5, 9), EndAt: end(day(5, 17))},
	})
}

func ids(sessions []Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestGetAllSessions_NoFilterSortsByStart(t *testing.T) {
	store := fixtureSessions()

	got := store.GetAllSessions(Filter{})
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(got))
}

func TestGetAllSessions_FromBoundIsInclusive(t *testing.T) {
	store := fixtureSessions()
	from := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC) // exactly s2's start

	got := store.GetAllSessions(Filter{From: &from})
	assert.Equal(t, []string{"s2", "s3", "s4"}, ids(got))
}

func TestGetAllSessions_ToBoundChecksEndedOnly(t *testing.T) {
	store := fixtureSessions()
	to := time.Date(2026, 8, 4, 17, 0, 0, 0, time.UTC) // exactly s2's end

	got := store.GetAllSessions(Filter{To: &to})
	// s4 ends after the bound and is excluded; running s3 is never
	// excluded by the upper bound.
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(got))
}

func TestGetAllSessions_LabelsMatchAnyOf(t *testing.T) {
	store := fixtureSessions()

	got := store.GetAllSessions(Filter{Labels: []string{"alpha"}})
	assert.Equal(t, []string{"s1", "s3"}, ids(got))

	got = store.GetAllSessions(Filter{Labels: []string{"alpha", "beta"}})
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(got))

	got = store.GetAllSessions(Filter{Labels: []string{"gamma"}})
	assert.Empty(t, got)
}

func TestGetAllSessions_AllAxesMustPass(t *testing.T) {
	store := fixtureSessions()
	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 4, 23, 0, 0, 0, time.UTC)

	got := store.GetAllSessions(Filter{From: &from, To: &to, Labels: []string{"beta"}})
	assert.Equal(t, []string{"s2", "s3"}, ids(got))
}

func TestGetAllSessions_StableOnEqualStarts(t *testing.T) {
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore([]Session{
		{ID: "first", StartAt: at},
		{ID: "second", StartAt: at},
	})

	got := store.GetAllSessions(Filter{})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"first", "second"}, ids(got))
}

func TestGetAllSessions_DoesNotMutateStoreOrder(t *testing.T) {
	store := fixtureSessions()
	_ = store.GetAllSessions(Filter{})

	assert.Equal(t, []string{"s2", "s1", "s3", "s4"}, ids(store.Sessions()))
}
