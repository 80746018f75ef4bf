package lambda

import (
	"context"
	"sync"

	"employee-records-api/internal/config"
	"employee-records-api/pkg/server"
)

// ContainerManager caches the service container across invocations on a
// warm Lambda instance. Only the client handles are reused; no request
// data survives between invocations.
type ContainerManager struct {
	mu        sync.Mutex
	container *server.Container
}

var (
	globalContainerManager *ContainerManager
	containerManagerOnce   sync.Once
)

// GetContainerManager returns the process-wide container manager
func GetContainerManager() *ContainerManager {
	containerManagerOnce.Do(func() {
		globalContainerManager = &ContainerManager{}
	})
	return globalContainerManager
}

// GetContainer returns the cached container, building it on first use
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return container, nil
}
