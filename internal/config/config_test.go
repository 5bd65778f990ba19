package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0644))
	return dir
}

func TestLoadConfigConvertsExpireHoursOnce(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: "debug"
jwt:
  secret: "test-secret"
  expire_hours: 72
`)

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, 72, cfg.JWT.ExpireHours)
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
}

func TestLoadConfigDefaultsExpireHours(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: "debug"
jwt:
  secret: "test-secret"
`)

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
}

func TestLoadConfigRejectsShortSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: "release"
jwt:
  secret: "short"
  expire_hours: 72
`)

	_, err := LoadConfig(dir)

	assert.Error(t, err)
}
