package pkg

import (
	"fmt"
	"time"
)

// AppError is the error envelope returned by the HTTP layer.
//
// Code is a stable machine readable identifier (e.g. SERVICE_ORDER_NOT_FOUND),
// Message is safe to show to API consumers and Err keeps the wrapped cause for
// logs only.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:      e.Code,
		Message:   e.Message,
		Status:    e.HTTPStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
