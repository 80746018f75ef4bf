package storage

import (
	"context"
	"sync"
)

// MockObjectStorage is an in-memory implementation of ObjectStorage for
// testing
type MockObjectStorage struct {
	mu      sync.RWMutex
	objects map[string]*mockObject
}

type mockObject struct {
	data        []byte
	contentType string
}

// NewMockObjectStorage creates a new MockObjectStorage instance
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{
		objects: make(map[string]*mockObject),
	}
}

// Retrieve implements ObjectStorage.Retrieve
func (m *MockObjectStorage) Retrieve(ctx context.Context, bucket, key string) ([]byte, error) {
	if key == "" {
		return nil, NewStorageError("Retrieve", bucket, key, ErrInvalidKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, NewStorageError("Retrieve", bucket, key, ErrObjectNotFound)
	}
	return append([]byte(nil), obj.data...), nil
}

// Store implements ObjectStorage.Store
func (m *MockObjectStorage) Store(ctx context.Context, bucket, key string, data []byte, opts *StoreOptions) error {
	if key == "" {
		return NewStorageError("Store", bucket, key, ErrInvalidKey)
	}

	contentType := "application/octet-stream"
	if opts != nil && opts.ContentType != "" {
		contentType = opts.ContentType
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[bucket+"/"+key] = &mockObject{
		data:        append([]byte(nil), data...),
		contentType: contentType,
	}
	return nil
}

// ContentType returns the stored content type for a key, for test
// assertions
func (m *MockObjectStorage) ContentType(bucket, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[bucket+"/"+key]
	if !ok {
		return "", false
	}
	return obj.contentType, true
}

// Len returns the number of stored objects
func (m *MockObjectStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
