package model

import (
	"fmt"
	"net/http"
)

// Status is the error envelope returned to API callers.
type Status struct {
	Code int    `json:"code"`
	Desc string `json:"desc"`
}

// NewStatus builds Status with code and formatted description.
func NewStatus(code int, format string, args ...any) *Status {
	return &Status{Code: code, Desc: fmt.Sprintf(format, args...)}
}

// Internal builds a 500 Status.
func Internal(format string, args ...any) *Status {
	return NewStatus(http.StatusInternalServerError, format, args...)
}

// BadRequest builds a 400 Status.
func BadRequest(format string, args ...any) *Status {
	return NewStatus(http.StatusBadRequest, format, args...)
}

func (s *Status) Error() string {
	return fmt.Sprintf("status %d: %s", s.Code, s.Desc)
}
