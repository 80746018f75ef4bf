package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMockObjectStorage_StoreRetrieve(t *testing.T) {
	store := NewMockObjectStorage()
	ctx := context.Background()

	data := []byte("image bytes")
	if err := store.Store(ctx, "bucket", "photos/a.jpg", data, &StoreOptions{ContentType: "image/jpeg"}); err != nil {
		t.Fatal(err)
	}

	got, err := store.Retrieve(ctx, "bucket", "photos/a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Errorf("retrieved %q, want %q", got, data)
	}

	if ct, ok := store.ContentType("bucket", "photos/a.jpg"); !ok || ct != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", ct)
	}
}

func TestMockObjectStorage_BucketsAreIsolated(t *testing.T) {
	store := NewMockObjectStorage()
	ctx := context.Background()

	if err := store.Store(ctx, "a", "key", []byte("x"), nil); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Retrieve(ctx, "b", "key"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("err = %v, want object not found", err)
	}
}

func TestMockObjectStorage_EmptyKey(t *testing.T) {
	store := NewMockObjectStorage()
	ctx := context.Background()

	if err := store.Store(ctx, "b", "", []byte("x"), nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("store err = %v, want invalid key", err)
	}
	if _, err := store.Retrieve(ctx, "b", ""); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("retrieve err = %v, want invalid key", err)
	}
}

func TestMockObjectStorage_ReturnsCopies(t *testing.T) {
	store := NewMockObjectStorage()
	ctx := context.Background()

	if err := store.Store(ctx, "b", "k", []byte("abc"), nil); err != nil {
		t.Fatal(err)
	}

	first, _ := store.Retrieve(ctx, "b", "k")
	first[0] = 'x'

	second, _ := store.Retrieve(ctx, "b", "k")
	if string(second) != "abc" {
		t.Error("mutating retrieved data must not affect the store")
	}
}
