package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation is a caller-correctable error carrying the validation detail.
func Validation(detail string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: detail, StatusCode: http.StatusBadRequest}
}

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Conflict(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

func Unauthorized(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}

// Messages shared by services and storage.
const (
	ThreadNotFound = "Thread ID not found!"
	UserNotFound   = "User not found!"
	LikeNotFound   = "Like not found!"
	FollowNotFound = "Follow not found!"
)
