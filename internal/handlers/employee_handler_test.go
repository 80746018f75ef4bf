package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories/memory"
	"employee-records-api/internal/services"
	"employee-records-api/pkg/lambda"
)

func newTestHandler() (*EmployeeHandler, *memory.EmployeeRepository) {
	repo := memory.NewEmployeeRepository()
	return NewEmployeeHandler(services.NewEmployeeService(repo, nil), nil), repo
}

func request(method, path string, body []byte) *lambda.Request {
	return &lambda.Request{
		Method:   method,
		Path:     path,
		Body:     body,
		RawEvent: []byte(`{"requestContext": {"http": {"method": "` + method + `"}}}`),
	}
}

func decodeBody(t *testing.T, resp *lambda.Response, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body, v); err != nil {
		t.Fatalf("response body is not valid JSON: %v (body: %s)", err, resp.Body)
	}
}

func createEmployee(t *testing.T, h *EmployeeHandler, attributes string) string {
	t.Helper()
	resp := h.Route(context.Background(), request("POST", "/employees", []byte(attributes)))
	if resp.StatusCode != 201 {
		t.Fatalf("create status = %d, want 201 (body: %s)", resp.StatusCode, resp.Body)
	}
	var created models.CreateEmployeeResponse
	decodeBody(t, resp, &created)
	if created.ID == "" {
		t.Fatal("create response missing id")
	}
	return created.ID
}

func TestRoute_CreateGetRoundTrip(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()

	id := createEmployee(t, h, `{"name": "Ada", "level": 7}`)

	resp := h.Route(ctx, request("GET", "/employees/"+id, nil))
	if resp.StatusCode != 200 {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("content type = %q, want application/json", resp.Headers["Content-Type"])
	}

	var employee map[string]any
	decodeBody(t, resp, &employee)
	if employee["id"] != id {
		t.Errorf("id = %v, want %s", employee["id"], id)
	}
	if employee["name"] != "Ada" {
		t.Errorf("name = %v, want Ada", employee["name"])
	}
	if employee["level"] != float64(7) {
		t.Errorf("level = %v, want 7", employee["level"])
	}
}

func TestRoute_CreateOverwritesCallerSuppliedID(t *testing.T) {
	h, _ := newTestHandler()

	id := createEmployee(t, h, `{"id": "chosen-by-caller", "name": "Eve"}`)
	if id == "chosen-by-caller" {
		t.Error("caller-supplied id was not replaced with a generated one")
	}
}

func TestRoute_GetMissing(t *testing.T) {
	h, _ := newTestHandler()

	resp := h.Route(context.Background(), request("GET", "/employees/nope", nil))
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body ErrorResponse
	decodeBody(t, resp, &body)
	if body.Error != "Employee 'nope' not found" {
		t.Errorf("error message = %q", body.Error)
	}
}

func TestRoute_ListEmptyAndPopulated(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()

	resp := h.Route(ctx, request("GET", "/employees", nil))
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != "[]" {
		t.Errorf("empty table body = %s, want []", resp.Body)
	}

	first := createEmployee(t, h, `{"name": "a"}`)
	second := createEmployee(t, h, `{"name": "b"}`)

	resp = h.Route(ctx, request("GET", "/employees", nil))
	var employees []map[string]any
	decodeBody(t, resp, &employees)
	if len(employees) != 2 {
		t.Fatalf("listed %d employees, want 2", len(employees))
	}

	ids := map[any]bool{employees[0]["id"]: true, employees[1]["id"]: true}
	if !ids[first] || !ids[second] {
		t.Errorf("list missing created ids: %v", employees)
	}
}

func TestRoute_Update(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()

	id := createEmployee(t, h, `{"name": "Ada", "level": 7}`)

	resp := h.Route(ctx, request("PATCH", "/employees/"+id,
		[]byte(`{"attribute": "level", "value": 8}`)))
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, resp.Body)
	}

	var updated map[string]any
	decodeBody(t, resp, &updated)
	if len(updated) != 1 || updated["level"] != float64(8) {
		t.Errorf("update response = %v, want {level: 8}", updated)
	}

	// The stored record reflects the change
	resp = h.Route(ctx, request("GET", "/employees/"+id, nil))
	var employee map[string]any
	decodeBody(t, resp, &employee)
	if employee["level"] != float64(8) {
		t.Errorf("stored level = %v, want 8", employee["level"])
	}
	if employee["name"] != "Ada" {
		t.Errorf("other attributes must be untouched, got %v", employee)
	}
}

func TestRoute_UpdateMissingPerformsNoWrite(t *testing.T) {
	h, repo := newTestHandler()
	ctx := context.Background()

	resp := h.Route(ctx, request("PATCH", "/employees/ghost",
		[]byte(`{"attribute": "level", "value": 1}`)))
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	employees, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(employees) != 0 {
		t.Errorf("update on missing id wrote %d records", len(employees))
	}
}

func TestRoute_UpdateValidation(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()
	id := createEmployee(t, h, `{"name": "Ada"}`)

	tests := []struct {
		name string
		body string
	}{
		{"missing attribute", `{"value": 3}`},
		{"id attribute rejected", `{"attribute": "id", "value": "forged"}`},
		{"malformed json", `{"attribute": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Route(ctx, request("PATCH", "/employees/"+id, []byte(tt.body)))
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400 (body: %s)", resp.StatusCode, resp.Body)
			}
		})
	}
}

func TestRoute_DeleteThenGet(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()

	id := createEmployee(t, h, `{"name": "Ada"}`)

	resp := h.Route(ctx, request("DELETE", "/employees/"+id, nil))
	if resp.StatusCode != 204 {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}
	if len(resp.Body) != 0 {
		t.Errorf("delete body = %q, want empty", resp.Body)
	}

	resp = h.Route(ctx, request("GET", "/employees/"+id, nil))
	if resp.StatusCode != 404 {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestRoute_DeleteMissing(t *testing.T) {
	h, _ := newTestHandler()

	resp := h.Route(context.Background(), request("DELETE", "/employees/ghost", nil))
	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRoute_InfoEcho(t *testing.T) {
	h, _ := newTestHandler()

	req := request("GET", "/employees/info", nil)
	resp := h.Route(context.Background(), req)

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != string(req.RawEvent) {
		t.Errorf("info echo body = %s, want raw event", resp.Body)
	}
}

func TestRoute_NotImplemented(t *testing.T) {
	h, repo := newTestHandler()
	ctx := context.Background()

	tests := []struct {
		method string
		path   string
	}{
		{"PUT", "/employees"},
		{"POST", "/employees/some-id"},
		{"GET", "/unknown"},
		{"OPTIONS", "/employees"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := h.Route(ctx, request(tt.method, tt.path, nil))
			if resp.StatusCode != 501 {
				t.Errorf("status = %d, want 501", resp.StatusCode)
			}

			var body ErrorResponse
			decodeBody(t, resp, &body)
			if body.Error != "Method Not Implemented" {
				t.Errorf("error = %q, want Method Not Implemented", body.Error)
			}
		})
	}

	employees, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(employees) != 0 {
		t.Errorf("unmatched routes caused %d writes", len(employees))
	}
}

func TestRoute_CreateEmptyBody(t *testing.T) {
	h, _ := newTestHandler()
	ctx := context.Background()

	resp := h.Route(ctx, request("POST", "/employees", nil))
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201 (body: %s)", resp.StatusCode, resp.Body)
	}

	var created models.CreateEmployeeResponse
	decodeBody(t, resp, &created)

	resp = h.Route(ctx, request("GET", "/employees/"+created.ID, nil))
	var employee map[string]any
	decodeBody(t, resp, &employee)
	if len(employee) != 1 || employee["id"] != created.ID {
		t.Errorf("empty create produced %v, want only the id", employee)
	}
}
