// Package storage writes media objects to an S3-compatible backend over
// streaming I/O. Nothing is spooled to local disk.
package storage

import (
	"context"
	"io"
)

// PutObjectOptions carries optional upload parameters. Size must be the exact
// payload length when known, or -1 to let the backend chunk the stream.
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage is the object-store client used by the media pipeline.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
}
