package blob

import (
	"context"
	"errors"

	"github.com/awantoch/beemchart/config"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

// ErrInvalidURL is returned when a URL does not belong to the store.
var ErrInvalidURL = errors.New("invalid blob URL")

// Store is the interface for pluggable blob storage backends.
type Store interface {
	Put(ctx context.Context, data []byte, mime, filename string) (url string, err error)
	Get(ctx context.Context, url string) ([]byte, error)
}

// See filesystem.go and s3.go for driver implementations.

// New returns a Store for cfg, or a FilesystemStore under the default blob
// directory when cfg is nil or names no driver.
func New(ctx context.Context, cfg *config.BlobConfig) (Store, error) {
	if cfg == nil || cfg.Driver == "" || cfg.Driver == constants.BlobDriverFilesystem {
		dir := config.DefaultBlobDir
		if cfg != nil && cfg.Directory != "" {
			dir = cfg.Directory
		}
		return NewFilesystemStore(dir)
	}
	if cfg.Driver == constants.BlobDriverS3 {
		if cfg.Bucket == "" || cfg.Region == "" {
			return nil, utils.Errorf("s3 driver requires bucket and region")
		}
		return NewS3Store(ctx, cfg.Bucket, cfg.Region)
	}
	return nil, utils.Errorf("unsupported blob driver: %s", cfg.Driver)
}
