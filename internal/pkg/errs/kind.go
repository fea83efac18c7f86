package errs

import "errors"

// Kind is the coarse failure class of an error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthentication
	KindPermission
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindPermission:
		return "permission"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	}
	return "internal"
}

// Classify walks the error chain and returns the first matching Kind.
// Authentication and permission failures are checked first.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrAuthenticationRequired):
		return KindAuthentication
	case errors.Is(err, ErrPermissionDenied):
		return KindPermission
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	}
	return KindInternal
}
