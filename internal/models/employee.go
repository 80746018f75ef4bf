package models

// IDAttribute is the mandatory unique identifier attribute on every
// employee record. It is generated server-side on creation and is the
// table's partition key.
const IDAttribute = "id"

// Employee is a schemaless employee record: the generated identifier
// plus whatever attributes the caller supplied on creation or update.
// No schema is enforced beyond the identifier.
type Employee map[string]any

// ID returns the record's identifier, or "" if it is absent or not a
// string (which only happens for records written outside this API).
func (e Employee) ID() string {
	id, _ := e[IDAttribute].(string)
	return id
}

// WithID returns a copy of the record with the identifier set,
// overwriting any caller-supplied value for it.
func (e Employee) WithID(id string) Employee {
	out := make(Employee, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[IDAttribute] = id
	return out
}

// Clone returns a shallow copy of the record. Nested maps and lists are
// shared; callers that mutate nested values must copy deeper themselves.
func (e Employee) Clone() Employee {
	out := make(Employee, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// CreateEmployeeResponse is the body returned by a successful create.
// Only the generated identifier is returned, not the full record.
type CreateEmployeeResponse struct {
	ID string `json:"id"`
}

// UpdateEmployeeRequest is the body accepted by the update operation.
// Exactly one attribute is set per call.
type UpdateEmployeeRequest struct {
	Attribute string `json:"attribute" validate:"required"`
	Value     any    `json:"value"`
}
