package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-registry/pkg/apperror"
)

// ErrorBody is the payload for every failed call.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// WriteResult is returned by create, update and delete operations.
type WriteResult map[string]interface{}

func Success() WriteResult {
	return WriteResult{"success": true}
}

// Created reports the identifier assigned by the store under key, e.g.
// {"success": true, "patient_id": 7}.
func Created(key string, id int64) WriteResult {
	return WriteResult{"success": true, key: id}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Error writes err using the status its kind maps to.
func Error(w http.ResponseWriter, err error) {
	body := ErrorBody{Error: err.Error()}

	var appErr *apperror.Error
	status := http.StatusInternalServerError
	if errors.As(err, &appErr) {
		status = appErr.Kind.HTTPStatus()
		body.Error = appErr.Message
		body.Fields = appErr.Fields
	}

	JSON(w, status, body)
}

func UnknownEndpoint(w http.ResponseWriter) {
	JSON(w, http.StatusOK, ErrorBody{Error: "Unknown endpoint"})
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	JSON(w, http.StatusInternalServerError, ErrorBody{Error: message})
}
