package util

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorKind classifies a domain failure. Every repository error carries
// exactly one kind so the mapping to an HTTP status is a total switch,
// not string sniffing.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindUnclassified
)

// APIError is the tagged error variant returned by the repositories.
type APIError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrNotFound builds a not-found error naming the missing resource, e.g. "Patient not found".
func ErrNotFound(resource string) *APIError {
	return &APIError{Kind: KindNotFound, Msg: fmt.Sprintf("%s not found", resource)}
}

// ErrConflict builds a conflict error for a violated unique constraint.
func ErrConflict(msg string, err error) *APIError {
	return &APIError{Kind: KindConflict, Msg: msg, Err: err}
}

// TranslateDBError converts a storage error into a tagged APIError.
// Record-not-found names the given resource; duplicate keys become Conflict;
// foreign key violations mean the referenced parent is gone and are treated
// as not-found on the parent resource, never as a raw storage error.
func TranslateDBError(err error, resource, parent string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict("Resource already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		if parent == "" {
			parent = "Related resource"
		}
		return ErrNotFound(parent)
	default:
		return &APIError{Kind: KindUnclassified, Msg: "Internal server error", Err: err}
	}
}

// RespondError writes the response for a repository failure. The switch over
// ErrorKind is exhaustive; anything that is not an APIError falls through to
// the generic 500 path.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		CallServerError(c, APIErrorParams{Msg: "Internal server error", Err: err})
		return
	}

	switch apiErr.Kind {
	case KindValidation:
		CallUserError(c, APIErrorParams{Msg: apiErr.Msg, Err: apiErr.Err})
	case KindNotFound:
		CallErrorNotFound(c, APIErrorParams{Msg: apiErr.Msg, Err: apiErr.Err})
	case KindConflict:
		CallConflict(c, APIErrorParams{Msg: apiErr.Msg, Err: apiErr.Err})
	case KindUnclassified:
		CallServerError(c, APIErrorParams{Msg: apiErr.Msg, Err: apiErr.Err})
	default:
		CallServerError(c, APIErrorParams{Msg: apiErr.Msg, Err: apiErr.Err})
	}
}

// IsNotFound reports whether err is a tagged not-found error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsConflict reports whether err is a tagged conflict error.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindConflict
}
