// Package apperror classifies failures into kinds that map to HTTP statuses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindInfra Kind = iota
	KindValidation
	KindMethodNotAllowed
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindConstraint:
		return "constraint"
	default:
		return "infra"
	}
}

// HTTPStatus maps a kind to its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConstraint:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func MethodNotAllowed(method, endpoint string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Message: fmt.Sprintf("Method %s is not supported for endpoint %s", method, endpoint),
	}
}

// PostgreSQL SQLSTATE codes that indicate the caller sent data the schema
// rejects, as opposed to the store being unavailable.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
	codeInvalidDatetime     = "22007"
	codeDatetimeOverflow    = "22008"
	codeNumericOutOfRange   = "22003"
)

// FromStore wraps a store error with the kind its SQLSTATE implies. The
// driver message is kept as the client-facing message.
func FromStore(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &Error{Kind: KindInfra, Message: err.Error(), Err: err}
	}

	kind := KindInfra
	switch pgErr.Code {
	case codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		kind = KindConstraint
	case codeNotNullViolation, codeInvalidText, codeInvalidDatetime, codeDatetimeOverflow, codeNumericOutOfRange:
		kind = KindValidation
	}

	return &Error{Kind: kind, Message: pgErr.Message, Err: err}
}

// KindOf returns the classified kind, or KindInfra for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInfra
}
