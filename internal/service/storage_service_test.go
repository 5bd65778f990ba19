package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lingua_edu_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageServiceLocal(t *testing.T) {
	svc, err := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})

	require.NoError(t, err)
	assert.IsType(t, &LocalStorageProvider{}, svc.Provider)
}

func TestNewStorageServiceRefusesBrokenMinio(t *testing.T) {
	// A bad endpoint must fail the boot, not fall back to local disk.
	_, err := NewStorageService(&config.Config{
		Storage: config.StorageConfig{
			Type:          "minio",
			MinioEndpoint: "not a valid endpoint",
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "minio storage init")
}

func TestLocalStorageProviderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	url, err := provider.Upload(context.Background(), "cover.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/cover.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, provider.Delete(context.Background(), "cover.png"))
	_, err = os.Stat(filepath.Join(dir, "cover.png"))
	assert.True(t, os.IsNotExist(err))
}
