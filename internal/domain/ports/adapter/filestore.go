package adapter

import (
	"context"
	"io"
)

// FileStore stages uploaded binaries. Keys are opaque to the domain.
type FileStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
}
