package formapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the payload of a validate call.
type Result struct {
	Valid  bool             `json:"valid"`
	Errors validator.Errors `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) error {
	return writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: message}})
}
