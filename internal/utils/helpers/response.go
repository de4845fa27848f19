package helpers

import (
	"encoding/json"
	"net/http"

	"blogger/internal/apperr"
)

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
	Details string   `json:"details,omitempty"`
	Code    string   `json:"code,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as the whole body, without an envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// Error renders err with the status of its apperr.Kind. Errors without a
// Kind are reported as a bare 500.
func Error(w http.ResponseWriter, err error) {
	e, ok := apperr.As(err)
	if !ok {
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
		return
	}

	JSON(w, e.Status(), ErrorBody{
		Error:   e.Message,
		Details: e.Details,
		Code:    e.Code,
		Fields:  e.Fields,
	})
}

// DecodeJSON reads r's body into dst. A malformed body is a validation error.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid JSON body", err.Error())
	}
	return nil
}
