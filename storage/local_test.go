package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/config"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cvs")
	store := NewLocalStore(dir)
	ctx := context.Background()

	location, err := store.Save(ctx, "student_cv_1.pdf", []byte("%PDF-first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "student_cv_1.pdf"), location)

	// Regenerating overwrites
	_, err = store.Save(ctx, "student_cv_1.pdf", []byte("%PDF-second"))
	require.NoError(t, err)

	data, err := store.Open(ctx, "student_cv_1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "student_cv_404.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_RejectsPaths(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "../escape.pdf", "a/b.pdf", ".."} {
		_, err := store.Save(ctx, name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.ErrorIs(t, ValidateName(name), ErrInvalidName, name)
	}
	assert.NoError(t, ValidateName("student_cv_7.pdf"))
}

func TestNew(t *testing.T) {
	store, err := New(context.Background(), &config.Config{StorageBackend: config.StorageLocal, PDFDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(context.Background(), &config.Config{StorageBackend: "ftp"})
	assert.Error(t, err)
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", getContentType(".PDF"))
	assert.Equal(t, "application/octet-stream", getContentType(".bin"))
}
