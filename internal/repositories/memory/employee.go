// Package memory provides an in-memory EmployeeRepository used by tests
// and the local dev server's default backend.
package memory

import (
	"context"
	"sync"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories"
)

// EmployeeRepository is an in-memory implementation of
// repositories.EmployeeRepository. List order follows insertion order.
type EmployeeRepository struct {
	mu    sync.RWMutex
	items map[string]models.Employee
	order []string
}

// NewEmployeeRepository creates an empty in-memory repository
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		items: make(map[string]models.Employee),
	}
}

// List implements repositories.EmployeeRepository.List
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]models.Employee, 0, len(r.items))
	for _, id := range r.order {
		employees = append(employees, r.items[id].Clone())
	}
	return employees, nil
}

// Get implements repositories.EmployeeRepository.Get
func (r *EmployeeRepository) Get(ctx context.Context, id string) (models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.items[id]
	if !ok {
		return nil, repositories.NotFoundError(id)
	}
	return employee.Clone(), nil
}

// Put implements repositories.EmployeeRepository.Put
func (r *EmployeeRepository) Put(ctx context.Context, employee models.Employee) error {
	id := employee.ID()
	if id == "" {
		return repositories.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = employee.Clone()
	return nil
}

// SetAttribute implements repositories.EmployeeRepository.SetAttribute.
// Like the DynamoDB update expression it mirrors, setting an attribute
// on an absent ID creates a bare item rather than failing.
func (r *EmployeeRepository) SetAttribute(ctx context.Context, id, attribute string, value any) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.items[id]
	if !ok {
		employee = models.Employee{models.IDAttribute: id}
		r.order = append(r.order, id)
	}
	employee[attribute] = value
	r.items[id] = employee
	return value, nil
}

// Delete implements repositories.EmployeeRepository.Delete
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
