package service

// Kind classifies a domain failure so the route layer can map it to a
// status code without inspecting message text.
type Kind string

const (
	KindValidation   Kind = "validation"   // malformed or inconsistent input -> 400
	KindUnauthorized Kind = "unauthorized" // bad credentials -> 401
	KindNotFound     Kind = "not_found"    // referenced entity absent -> 404
	KindConflict     Kind = "conflict"     // uniqueness or 1:1 violation -> 409
)

// Error is a typed domain failure. Anything the service returns that is not
// an *Error is treated as unexpected and sanitized to a 500 by the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a not-found error with a caller-facing message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a conflict error with a caller-facing message.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Invalid builds a validation error with a caller-facing message.
func Invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unauthorized builds a credentials error with a caller-facing message.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}
