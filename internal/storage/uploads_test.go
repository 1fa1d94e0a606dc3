package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/storage"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func newTestStore(t *testing.T) *storage.UploadStore {
	t.Helper()
	store, err := storage.NewUploadStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return store
}

func TestStoreRejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store("x.exe", bytes.NewReader([]byte("MZ")))
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UNSUPPORTED_TYPE", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestStoreWritesAllowedFile(t *testing.T) {
	store := newTestStore(t)
	content := []byte("fake png bytes")

	asset, err := store.Store("x.png", bytes.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "x.png", asset.OriginalFilename)
	assert.Equal(t, int64(len(content)), asset.SizeBytes)
	assert.Equal(t, "/uploads/"+asset.Filename, asset.FileURL)
	assert.Equal(t, ".png", filepath.Ext(asset.Filename))

	written, err := os.ReadFile(filepath.Join(store.Dir(), asset.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestStoreExtensionCaseInsensitive(t *testing.T) {
	store := newTestStore(t)

	asset, err := store.Store("LOGO.JPG", bytes.NewReader([]byte("jpg")))
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(asset.Filename))
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Store("logo.pdf", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	second, err := store.Store("logo.pdf", bytes.NewReader([]byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}
