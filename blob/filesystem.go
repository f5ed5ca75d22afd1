package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/awantoch/beemchart/constants"
)

const fileScheme = "file://"

// FilesystemStore keeps blobs as files in a single directory.
type FilesystemStore struct {
	dir string
}

// NewFilesystemStore creates the directory if needed.
func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob directory must be non-empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FilesystemStore{dir: dir}, nil
}

// Put writes the blob atomically and returns a file:// URL. An empty
// filename gets a random one.
func (f *FilesystemStore) Put(ctx context.Context, data []byte, mime, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" {
		filename = "chart-" + uuid.NewString()
	}
	path := filepath.Join(f.dir, filepath.Base(filename))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, constants.FilePermission); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", err
	}
	return fileScheme + path, nil
}

// Get reads the blob behind a file:// URL.
func (f *FilesystemStore) Get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, ok := strings.CutPrefix(url, fileScheme)
	if !ok || path == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}
	return os.ReadFile(path)
}
