// Package sqlite provides a SQLite-backed EmployeeRepository for the
// local dev server. Records are stored as JSON documents in a single
// table keyed by the employee ID, matching the flat key-value shape of
// the production DynamoDB table.
package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id TEXT PRIMARY KEY,
	attributes TEXT NOT NULL
);`

// EmployeeRepository is a SQLite implementation of
// repositories.EmployeeRepository.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository opens (or creates) the database at path and
// ensures the employees table exists. Use ":memory:" for tests.
func NewEmployeeRepository(path string) (*EmployeeRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create employees table: %w", err)
	}

	return &EmployeeRepository{db: db}, nil
}

// Close releases the underlying database handle
func (r *EmployeeRepository) Close() error {
	return r.db.Close()
}

// List implements repositories.EmployeeRepository.List. Rows come back
// in rowid order, which matches insertion order for this table.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT attributes FROM employees ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		employee, err := decodeDocument(doc)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// Get implements repositories.EmployeeRepository.Get
func (r *EmployeeRepository) Get(ctx context.Context, id string) (models.Employee, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT attributes FROM employees WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.NotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}

	return decodeDocument(doc)
}

// Put implements repositories.EmployeeRepository.Put
func (r *EmployeeRepository) Put(ctx context.Context, employee models.Employee) error {
	id := employee.ID()
	if id == "" {
		return repositories.ErrInvalidID
	}

	doc, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("marshal employee %s: %w", id, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO employees (id, attributes) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET attributes = excluded.attributes`,
		id, string(doc))
	if err != nil {
		return fmt.Errorf("put employee %s: %w", id, err)
	}

	return nil
}

// SetAttribute implements repositories.EmployeeRepository.SetAttribute.
// Absent IDs get a bare item, mirroring the DynamoDB update expression.
func (r *EmployeeRepository) SetAttribute(ctx context.Context, id, attribute string, value any) (any, error) {
	employee, err := r.Get(ctx, id)
	if repositories.IsNotFound(err) {
		employee = models.Employee{models.IDAttribute: id}
	} else if err != nil {
		return nil, err
	}

	employee[attribute] = value
	if err := r.Put(ctx, employee); err != nil {
		return nil, err
	}

	return value, nil
}

// Delete implements repositories.EmployeeRepository.Delete
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}
	return nil
}

// decodeDocument parses a stored JSON document, normalizing numbers the
// same way the DynamoDB repository does: integer when exact, else
// floating point.
func decodeDocument(doc string) (models.Employee, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decode employee document: %w", err)
	}

	employee := make(models.Employee, len(raw))
	for k, v := range raw {
		employee[k] = decodeJSONValue(v)
	}
	return employee, nil
}

func decodeJSONValue(raw json.RawMessage) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return normalizeJSON(v)
}

func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, nested := range val {
			val[k] = normalizeJSON(nested)
		}
		return val
	case []any:
		for i, nested := range val {
			val[i] = normalizeJSON(nested)
		}
		return val
	default:
		return v
	}
}
