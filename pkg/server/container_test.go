package server

import (
	"context"
	"testing"

	"employee-records-api/internal/config"
)

func TestNewContainer_MemoryBackend(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Repository:  config.RepositoryConfig{Type: "memory"},
	}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	defer container.Close()

	if container.EmployeeService == nil {
		t.Error("employee service not wired")
	}
	if container.Logger == nil {
		t.Error("logger not wired")
	}
}

func TestNewContainer_SQLiteBackend(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Repository:  config.RepositoryConfig{Type: "sqlite", DBPath: ":memory:"},
	}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	if err := container.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewContainer_UnknownBackend(t *testing.T) {
	cfg := &config.Config{
		Repository: config.RepositoryConfig{Type: "cassandra"},
	}

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Error("expected an error for an unknown repository type")
	}
}
