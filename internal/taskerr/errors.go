// Package taskerr defines the error taxonomy surfaced by the workspace and
// reporting subsystems. Every failure is terminal for the current command;
// callers render the message and exit.
package taskerr

import "fmt"

// Error codes
const (
	// Resource errors
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"

	// Guarded mutations
	CodeProtected = "PROTECTED"
	CodeInUse     = "IN_USE"
	CodeLastOwner = "LAST_OWNER"

	// Validation
	CodeInvalidRole = "INVALID_ROLE"

	// Storage engine failures not otherwise classified
	CodeStorage = "STORAGE_ERROR"
)

// Error is a code-tagged error. Count carries the dependent-row count for
// IN_USE failures and is zero otherwise.
type Error struct {
	Code    string
	Message string
	Count   int64
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an absent named entity.
func NotFound(format string, args ...interface{}) *Error {
	return New(CodeNotFound, format, args...)
}

// AlreadyExists reports a unique-constraint collision.
func AlreadyExists(format string, args ...interface{}) *Error {
	return New(CodeAlreadyExists, format, args...)
}

// Protected reports an operation forbidden on the default namespace.
func Protected(format string, args ...interface{}) *Error {
	return New(CodeProtected, format, args...)
}

// InUse reports a deletion blocked by dependent task records.
func InUse(count int64, format string, args ...interface{}) *Error {
	e := New(CodeInUse, format, args...)
	e.Count = count
	return e
}

// LastOwner reports a removal that would leave a namespace without any owner.
func LastOwner(format string, args ...interface{}) *Error {
	return New(CodeLastOwner, format, args...)
}

// InvalidRole reports a role string outside the enumerated set.
func InvalidRole(format string, args ...interface{}) *Error {
	return New(CodeInvalidRole, format, args...)
}

// Storage wraps an unclassified storage-engine failure.
func Storage(err error, format string, args ...interface{}) *Error {
	e := New(CodeStorage, format, args...)
	e.Err = err
	if err != nil {
		e.Message = fmt.Sprintf("%s: %v", e.Message, err)
	}
	return e
}

// CodeOf returns the taxonomy code of err, or CodeStorage for any error
// that is not a taskerr.Error.
func CodeOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeStorage
}

func IsNotFound(err error) bool      { return CodeOf(err) == CodeNotFound }
func IsAlreadyExists(err error) bool { return CodeOf(err) == CodeAlreadyExists }
func IsProtected(err error) bool     { return CodeOf(err) == CodeProtected }
func IsInUse(err error) bool         { return CodeOf(err) == CodeInUse }
func IsLastOwner(err error) bool     { return CodeOf(err) == CodeLastOwner }
func IsInvalidRole(err error) bool   { return CodeOf(err) == CodeInvalidRole }
