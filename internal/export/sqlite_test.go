package export

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wtt/internal/track"
)

func fixture() []track.Session {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(125 * time.Minute)
	return []track.Session{
		{ID: "a", StartAt: start, EndAt: &end, Note: "wrote the report", Labels: []string{"billable", "client-a"}},
		{ID: "b", StartAt: start.Add(3 * time.Hour), Labels: []string{"client-b"}},
	}
}

func TestToSQLite_WritesSessionsAndLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	count, err := ToSQLite(path, fixture())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var sessions, labels int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&sessions))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM session_labels").Scan(&labels))
	assert.Equal(t, 2, sessions)
	assert.Equal(t, 3, labels)

	var minutes sql.NullInt64
	require.NoError(t, db.QueryRow("SELECT minutes FROM sessions WHERE id = 'a'").Scan(&minutes))
	require.True(t, minutes.Valid)
	assert.Equal(t, int64(125), minutes.Int64)

	// Running sessions export NULL end/minutes.
	require.NoError(t, db.QueryRow("SELECT minutes FROM sessions WHERE id = 'b'").Scan(&minutes))
	assert.False(t, minutes.Valid)
}

func TestToSQLite_ReExportReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	_, err := ToSQLite(path, fixture())
	require.NoError(t, err)

	count, err := ToSQLite(path, fixture()[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var sessions int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&sessions))
	assert.Equal(t, 1, sessions)
}
