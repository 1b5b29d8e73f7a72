package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/apperror"
)

// maxBodyBytes bounds how much of a request body is read.
const maxBodyBytes = 1 << 20

var emptyObject = json.RawMessage("{}")

// Request is the normalized form every operation receives: the method, the
// query parameters and a body that is always a JSON object.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
}

// Operation serves one (endpoint, method) pair. The returned value is
// encoded as the JSON response body.
type Operation func(ctx context.Context, req *Request) (interface{}, error)

// NewRequest reads r into a Request. An absent, malformed or non-object body
// becomes {}.
func NewRequest(r *http.Request) *Request {
	req := &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   emptyObject,
	}

	if r.Body == nil {
		return req
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' && json.Valid(raw) {
		req.Body = raw
	}

	return req
}

// Bind decodes the body into dst. A value of the wrong JSON type is reported
// against the field that carried it.
func (r *Request) Bind(dst interface{}) error {
	err := json.Unmarshal(r.Body, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return apperror.Validation("Validation failed", map[string]string{
			field: field + " has the wrong type",
		})
	}

	return apperror.Validation("Invalid request body", nil)
}

// Limit returns the limit query parameter, or 0 when it is absent.
func (r *Request) Limit() (int, error) {
	raw := r.Query.Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, apperror.Validation("Validation failed", map[string]string{
			"limit": "limit must be a positive integer",
		})
	}
	if limit > usecase.MaxListLimit {
		return 0, apperror.Validation("Validation failed", map[string]string{
			"limit": fmt.Sprintf("limit must be at most %d", usecase.MaxListLimit),
		})
	}
	return limit, nil
}

// ID returns the id query parameter used by deletes.
func (r *Request) ID() (int64, error) {
	raw := r.Query.Get("id")
	if raw == "" {
		return 0, apperror.Validation("Validation failed", map[string]string{
			"id": "id is required",
		})
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Validation failed", map[string]string{
			"id": "id must be a positive integer",
		})
	}
	return id, nil
}
