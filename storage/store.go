package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/campushire/platform/config"
)

var (
	// ErrNotFound is returned when a stored object or record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidName is returned for names that are not a single path element
	ErrInvalidName = errors.New("invalid object name")
)

// Store keeps generated CV files
type Store interface {
	// Save writes data under name and returns where it was stored
	Save(ctx context.Context, name string, data []byte) (string, error)
	// Open returns the content stored under name
	Open(ctx context.Context, name string) ([]byte, error)
	Close() error
}

// Linker is implemented by stores that can hand out temporary download URLs
type Linker interface {
	SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error)
}

// New creates the store selected by STORAGE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.StorageLocal:
		return NewLocalStore(cfg.PDFDir), nil
	case config.StorageGCS:
		return NewCloudStorageClient(ctx, cfg)
	case config.StorageS3:
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// objectPrefix is the folder generated CVs are kept under in buckets
const objectPrefix = "cvs/"

// ValidateName checks that name can be stored by every backend
func ValidateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
