// Package httpx implements the catalog's JSON response conventions:
// RFC7807 problems for failures, a field→messages payload for validation,
// and an empty body for absence.
package httpx

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; product payloads are tiny.
const maxBodyBytes = 1 << 20

// ProblemDetail represents RFC7807 problem details.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ValidationProblem is a problem detail extended with the field → messages
// map collected by the validation layer.
type ValidationProblem struct {
	ProblemDetail
	Errors map[string][]string `json:"errors"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Problem sends an RFC7807 problem details response.
func Problem(w http.ResponseWriter, status int, title, detail string) {
	JSON(w, status, ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// Validation sends a 400 problem response carrying every field violation.
func Validation(w http.ResponseWriter, fields map[string][]string) {
	JSON(w, http.StatusBadRequest, ValidationProblem{
		ProblemDetail: ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
		},
		Errors: fields,
	})
}

// NotFound sends an empty-bodied 404; absence carries no payload.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// DecodeJSON decodes a JSON request body into the target struct. Unknown
// fields are rejected so a misspelled key fails loudly instead of silently
// leaving a patch field unset, and bodies are capped at maxBodyBytes.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
