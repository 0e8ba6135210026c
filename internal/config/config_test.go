package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(FileEnv, "")

	conf, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", conf.String(KeyLogLevel))
	require.Equal(t, "console", conf.String(KeyLogFormat))
	require.Equal(t, time.RFC3339, conf.String(KeyLogTimeFormat))
	require.False(t, conf.Bool(KeyDumpTable))
	require.Equal(t, "fallback", conf.String("no.such.key", "fallback"))
	require.True(t, conf.Bool("no.such.key", true))
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(FileEnv, "")
	t.Setenv("HUFF_LOG_LEVEL", "debug")
	t.Setenv("HUFF_DUMP_TABLE", "true")
	t.Setenv("HUFF_LOG_TIMEFORMAT", "15:04")

	conf, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", conf.String(KeyLogLevel))
	require.True(t, conf.Bool(KeyDumpTable))
	require.Equal(t, "15:04", conf.String(KeyLogTimeFormat))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huff.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n  format: json\n"), 0o644))
	t.Setenv(FileEnv, path)

	conf, err := Load()
	require.NoError(t, err)
	require.Equal(t, "warn", conf.String(KeyLogLevel))
	require.Equal(t, "json", conf.String(KeyLogFormat))

	// Environment wins over the file.
	t.Setenv("HUFF_LOG_LEVEL", "error")
	conf, err = Load()
	require.NoError(t, err)
	require.Equal(t, "error", conf.String(KeyLogLevel))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
