// Package lambda holds transport-agnostic request/response types shared
// by the Lambda entrypoints and the local dev server.
package lambda

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`

	// RawEvent carries the original event envelope as JSON, for the
	// info echo endpoint.
	RawEvent []byte `json:"-"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}
