package service

import (
	"context"
	"io"
)

// Uploader is the port for external media storage. The Cloudinary adapter is
// the production implementation.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
