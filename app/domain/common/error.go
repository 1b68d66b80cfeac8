package common

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// MissingTokenCode is sent by the backend when the access token cookie has expired.
	MissingTokenCode = "MISSING_TOKEN"

	GenericErrorMessage = "Something went wrong"
)

// Error represents the error body returned by the backend
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// NewError creates a new Error instance
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// IsEmpty checks if the error is empty (no error)
func (e *Error) IsEmpty() bool {
	return e == nil || (e.Code == "" && e.Message == "")
}

// String returns the string representation of the error
func (e *Error) String() string {
	if e == nil {
		return ""
	}
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.String()
}

// ApiError is returned by the gateway for every failed backend call.
// Status is 0 when the request never produced a response.
type ApiError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *ApiError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	default:
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func (e *ApiError) IsMissingToken() bool {
	return e.Status == http.StatusUnauthorized && e.Code == MissingTokenCode
}

// UserMessage returns the text shown to staff for a failed operation.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr interface{ UserMessage() string }
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}
	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return GenericErrorMessage
}
