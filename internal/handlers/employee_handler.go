package handlers

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"employee-records-api/internal/models"
	"employee-records-api/internal/services"
	"employee-records-api/pkg/lambda"
)

const employeesPath = "/employees"

// EmployeeHandler routes HTTP-shaped events to employee operations
type EmployeeHandler struct {
	service services.EmployeeService
	logger  *logrus.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service services.EmployeeService, logger *logrus.Logger) *EmployeeHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EmployeeHandler{
		service: service,
		logger:  logger,
	}
}

// Route dispatches on HTTP method and path. An "info" segment anywhere
// in the path short-circuits to an echo of the inbound event; unmatched
// combinations yield 501.
func (h *EmployeeHandler) Route(ctx context.Context, req *lambda.Request) *lambda.Response {
	h.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}).Debug("Routing request")

	for _, segment := range strings.Split(req.Path, "/") {
		if segment == "info" {
			h.logger.Info("Info endpoint requested")
			return h.echo(req)
		}
	}

	switch {
	case req.Method == "GET" && req.Path == employeesPath:
		return h.handleList(ctx)
	case req.Method == "GET" && strings.HasPrefix(req.Path, employeesPath+"/"):
		return h.handleGet(ctx, pathID(req.Path))
	case req.Method == "POST" && req.Path == employeesPath:
		return h.handleCreate(ctx, req.Body)
	case req.Method == "PATCH" && strings.HasPrefix(req.Path, employeesPath+"/"):
		return h.handleUpdate(ctx, pathID(req.Path), req.Body)
	case req.Method == "DELETE" && strings.HasPrefix(req.Path, employeesPath+"/"):
		return h.handleDelete(ctx, pathID(req.Path))
	}

	h.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}).Warn("Unhandled method or path")
	return makeResponse(501, ErrorResponse{Error: "Method Not Implemented"})
}

func (h *EmployeeHandler) handleList(ctx context.Context) *lambda.Response {
	employees, err := h.service.ListEmployees(ctx)
	if err != nil {
		return h.errorResponse(err, "list")
	}
	return makeResponse(200, employees)
}

func (h *EmployeeHandler) handleGet(ctx context.Context, id string) *lambda.Response {
	employee, err := h.service.GetEmployee(ctx, id)
	if err != nil {
		return h.errorResponse(err, "get")
	}
	return makeResponse(200, employee)
}

func (h *EmployeeHandler) handleCreate(ctx context.Context, body []byte) *lambda.Response {
	var attributes models.Employee
	if err := parseBody(body, &attributes); err != nil {
		return h.errorResponse(err, "create")
	}

	id, err := h.service.CreateEmployee(ctx, attributes)
	if err != nil {
		return h.errorResponse(err, "create")
	}
	return makeResponse(201, models.CreateEmployeeResponse{ID: id})
}

func (h *EmployeeHandler) handleUpdate(ctx context.Context, id string, body []byte) *lambda.Response {
	var req models.UpdateEmployeeRequest
	if err := parseBody(body, &req); err != nil {
		return h.errorResponse(err, "update")
	}

	updated, err := h.service.UpdateEmployee(ctx, id, &req)
	if err != nil {
		return h.errorResponse(err, "update")
	}
	return makeResponse(200, updated)
}

func (h *EmployeeHandler) handleDelete(ctx context.Context, id string) *lambda.Response {
	if err := h.service.DeleteEmployee(ctx, id); err != nil {
		return h.errorResponse(err, "delete")
	}
	return &lambda.Response{
		StatusCode: 204,
		Headers:    jsonHeaders(),
	}
}

// echo returns the inbound event envelope unchanged
func (h *EmployeeHandler) echo(req *lambda.Request) *lambda.Response {
	body := req.RawEvent
	if len(body) == 0 {
		body = []byte("{}")
	}
	return &lambda.Response{
		StatusCode: 200,
		Headers:    jsonHeaders(),
		Body:       body,
	}
}

func (h *EmployeeHandler) errorResponse(err error, op string) *lambda.Response {
	status := statusForError(err)
	entry := h.logger.WithError(err).WithField("op", op)
	if status == 500 {
		entry.Error("Service error")
	} else {
		entry.Warn("Request failed")
	}
	return makeResponse(status, ErrorResponse{Error: errorMessage(err)})
}

// parseBody unmarshals a request body, treating an empty body as an
// empty JSON object.
func parseBody(body []byte, v any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &models.ValidationError{Message: "invalid JSON body: " + err.Error()}
	}
	return nil
}

// pathID returns the last path segment
func pathID(path string) string {
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}

func makeResponse(status int, body any) *lambda.Response {
	encoded, err := json.Marshal(body)
	if err != nil {
		encoded = []byte(`{"error": "failed to encode response"}`)
		status = 500
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    jsonHeaders(),
		Body:       encoded,
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}
