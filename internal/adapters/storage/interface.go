package storage

import (
	"context"
)

// StoreOptions provides options for storing objects
type StoreOptions struct {
	ContentType string
}

// ObjectStorage provides an abstraction over the blob store holding
// source images and generated thumbnails. Buckets are explicit because
// the thumbnailer reads from whichever bucket the event names and may
// write to a configured alternate.
type ObjectStorage interface {
	// Retrieve reads the full object at bucket/key
	Retrieve(ctx context.Context, bucket, key string) ([]byte, error)

	// Store writes an object, setting content type explicitly when
	// provided
	Store(ctx context.Context, bucket, key string, data []byte, opts *StoreOptions) error
}
