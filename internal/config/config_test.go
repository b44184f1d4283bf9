package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wtt/internal/track"
)

func TestResolve_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvNoteWidth, "")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultNoteWidth, cfg.NoteWidth)
}

func TestResolve_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDatabasePath, "/tmp/work.json")
	t.Setenv(EnvNoteWidth, "72")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work.json", cfg.DatabasePath)
	assert.Equal(t, 72, cfg.NoteWidth)
}

func TestResolve_MalformedWidth(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvNoteWidth, "wide")

	_, err := Resolve()
	require.Error(t, err)
	assert.True(t, track.IsValidation(err))
	assert.Contains(t, err.Error(), "wide")
}

func TestResolve_WidthMustBePositive(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvNoteWidth, "0")

	_, err := Resolve()
	require.Error(t, err)
	assert.True(t, track.IsValidation(err))
}

func TestResolve_ConfigFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wtt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_path: /data/from-file.json\nnote_width: 60\n"), 0o644))

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvNoteWidth, "")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.json", cfg.DatabasePath)
	assert.Equal(t, 60, cfg.NoteWidth)

	// Environment wins over the file.
	t.Setenv(EnvNoteWidth, "30")
	cfg, err = Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.json", cfg.DatabasePath)
	assert.Equal(t, 30, cfg.NoteWidth)
}

func TestResolve_ConfigFileErrors(t *testing.T) {
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvNoteWidth, "")

	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Resolve()
	require.Error(t, err)
	assert.Equal(t, track.ErrCodeIOFailure, track.CodeOf(err))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{not yaml"), 0o644))
	t.Setenv(EnvConfigFile, bad)
	_, err = Resolve()
	require.Error(t, err)
	assert.Equal(t, track.ErrCodeParseFailure, track.CodeOf(err))
}
