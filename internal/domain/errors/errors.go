package errors

import (
	"errors"
	"net/http"
	"strconv"
)

// Stable error codes returned to API clients.
const (
	CodeIPBanned      = "IP_BANNED"
	CodeInvalidAPIKey = "INVALID_API_KEY"
	CodeRateLimit     = "RATE_LIMIT"
	CodeBadRequest    = "BAD_REQUEST"
	CodeNotFound      = "NOT_FOUND"
	CodeForbidden     = "FORBIDDEN"
	CodeSlugTaken     = "SLUG_TAKEN"
	CodeInternal      = "INTERNAL"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrSlugTaken     = errors.New("public slug already in use")
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrIPBanned      = errors.New("ip banned")
)

// AppError represents an application error with HTTP status and a
// stable client-facing code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrInvalidInput)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func SlugTaken(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeSlugTaken, message, ErrSlugTaken)
}

// InvalidAPIKey is the single generic rejection for every failed
// authentication branch. Callers never learn whether the key was
// malformed, unknown or belonged to an inactive developer.
func InvalidAPIKey() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeInvalidAPIKey, "Invalid api key", ErrInvalidAPIKey)
}

// IPBanned reports the ban rejection with the remaining ban seconds.
func IPBanned(remainingSeconds int64) *AppError {
	return NewAppError(http.StatusTooManyRequests, CodeIPBanned,
		"IP banned for "+strconv.FormatInt(remainingSeconds, 10)+"s", ErrIPBanned)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "Internal error", err)
}

// RateLimitError is a dedicated rejection for either rate policy. It
// carries which policy tripped so the dispatch layer can map it
// deterministically and metrics can tell the two apart.
type RateLimitError struct {
	Policy string
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded: " + e.Policy
}
