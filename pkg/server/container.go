package server

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"employee-records-api/internal/config"
	"employee-records-api/internal/repositories"
	"employee-records-api/internal/repositories/dynamo"
	"employee-records-api/internal/repositories/memory"
	"employee-records-api/internal/repositories/sqlite"
	"employee-records-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *logrus.Logger
	EmployeeService services.EmployeeService

	closer io.Closer
}

// NewContainer creates a dependency injection container: config →
// repository backend → employee service.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	if cfg.Environment == "production" || config.IsServerlessMode() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	var repo repositories.EmployeeRepository
	var closer io.Closer

	switch cfg.Repository.Type {
	case "dynamo":
		client, err := dynamo.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}
		repo = dynamo.NewEmployeeRepository(client, cfg.Repository.Table, logger)

	case "sqlite":
		sqliteRepo, err := sqlite.NewEmployeeRepository(cfg.Repository.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite repository: %w", err)
		}
		repo = sqliteRepo
		closer = sqliteRepo

	case "memory":
		repo = memory.NewEmployeeRepository()

	default:
		return nil, fmt.Errorf("unknown repository type %q", cfg.Repository.Type)
	}

	return &Container{
		Config:          cfg,
		Logger:          logger,
		EmployeeService: services.NewEmployeeService(repo, logger),
		closer:          closer,
	}, nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
