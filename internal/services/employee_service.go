package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories"
)

// EmployeeService defines the five employee record operations
type EmployeeService interface {
	// ListEmployees returns every record in the table
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// GetEmployee returns a single record by ID
	GetEmployee(ctx context.Context, id string) (models.Employee, error)

	// CreateEmployee stores the caller's attributes under a freshly
	// generated ID and returns that ID
	CreateEmployee(ctx context.Context, attributes models.Employee) (string, error)

	// UpdateEmployee sets one attribute on an existing record and
	// returns a map holding the attribute's new stored value
	UpdateEmployee(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (map[string]any, error)

	// DeleteEmployee removes an existing record
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeService struct {
	repo   repositories.EmployeeRepository
	logger *logrus.Logger
}

// NewEmployeeService creates an employee service backed by the given
// repository
func NewEmployeeService(repo repositories.EmployeeRepository, logger *logrus.Logger) EmployeeService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &employeeService{
		repo:   repo,
		logger: logger,
	}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	s.logger.Info("Scanning all employees")

	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("count", len(employees)).Debug("Employees fetched")
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	s.logger.WithField("employee_id", id).Info("Fetching employee")
	return s.repo.Get(ctx, id)
}

func (s *employeeService) CreateEmployee(ctx context.Context, attributes models.Employee) (string, error) {
	// Collision probability on a v4 UUID is treated as negligible;
	// no uniqueness check is made against existing records.
	id := uuid.New().String()
	s.logger.WithField("employee_id", id).Info("Creating new employee")

	if err := s.repo.Put(ctx, attributes.WithID(id)); err != nil {
		return "", err
	}

	return id, nil
}

// UpdateEmployee verifies existence with a read before writing. The two
// calls are not atomic: a concurrent delete between them leaves a bare
// recreated item holding only the updated attribute.
func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (map[string]any, error) {
	s.logger.WithFields(logrus.Fields{
		"employee_id": id,
		"attribute":   req.Attribute,
	}).Info("Updating employee")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	value, err := s.repo.SetAttribute(ctx, id, req.Attribute, req.Value)
	if err != nil {
		return nil, err
	}

	return map[string]any{req.Attribute: value}, nil
}

// DeleteEmployee uses the same non-atomic check-then-act pattern as
// UpdateEmployee.
func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("employee_id", id).Info("Deleting employee")
	return s.repo.Delete(ctx, id)
}
