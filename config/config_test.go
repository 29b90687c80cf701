package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: nats://localhost:4222\nsubject: anna.query\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nats://localhost:4222", cfg.URL)
	assert.Equal(t, "anna.query", cfg.Subject)
}

func TestLoadMissingSubject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: nats://localhost:4222\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
