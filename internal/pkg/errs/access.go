package errs

import "fmt"

// AuthenticationError reports a caller that could not be identified: no
// credentials, bad credentials, an expired or revoked token, or an inactive
// account.
type AuthenticationError struct {
	Reason string
	Cause  error
}

func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

func NewAuthenticationErrorWithCause(reason string, cause error) *AuthenticationError {
	return &AuthenticationError{Reason: reason, Cause: cause}
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAuthenticationRequired, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAuthenticationRequired, e.Reason)
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthenticationRequired
}

// PermissionDeniedError reports an authenticated caller whose role or flags
// do not allow the requested action.
type PermissionDeniedError struct {
	Action string
}

func NewPermissionDeniedError(action string) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ConflictError reports a write that collides with existing state, such as
// a duplicate unique key.
type ConflictError struct {
	ParamName string
	Cause     error
}

func NewConflictError(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ParamName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
