package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("username", "123")

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("username", "123", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: username, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("sepulka", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrAuthenticationRequired)
		require.Error(t, errs.ErrPermissionDenied)
		require.Error(t, errs.ErrConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "authentication required", errs.ErrAuthenticationRequired.Error())
		assert.Equal(t, "permission denied", errs.ErrPermissionDenied.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("username", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		authErr := errs.NewAuthenticationError("token expired")
		require.ErrorIs(t, authErr, errs.ErrAuthenticationRequired)

		deniedErr := errs.NewPermissionDeniedError("create_sepulka")
		require.ErrorIs(t, deniedErr, errs.ErrPermissionDenied)
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := errs.NewAuthenticationError("unable to login with provided credentials")

		assert.Equal(t, "unable to login with provided credentials", err.Reason)
		assert.Equal(t, "authentication required: unable to login with provided credentials", err.Error())
		assert.Equal(t, errs.ErrAuthenticationRequired, err.Unwrap())
	})

	t.Run("NewAuthenticationErrorWithCause", func(t *testing.T) {
		cause := errors.New("token is expired")
		err := errs.NewAuthenticationErrorWithCause("invalid token", cause)

		assert.Equal(t, "authentication required: invalid token (cause: token is expired)", err.Error())
	})
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("update_delivery")

	assert.Equal(t, "update_delivery", err.Action)
	assert.Equal(t, "permission denied: update_delivery", err.Error())
	assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("username", errors.New("duplicate key"))

	assert.Equal(t, "conflict: username (cause: duplicate key)", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, errs.KindInternal},
		{"plain", errors.New("boom"), errs.KindInternal},
		{"not found", errs.NewObjectNotFoundError("sepulka", "abc"), errs.KindNotFound},
		{"invalid", errs.NewValueIsInvalidError("name"), errs.KindValidation},
		{"required", errs.NewValueIsRequiredError("name"), errs.KindValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("page_size", 500, 1, 100), errs.KindValidation},
		{"authentication", errs.NewAuthenticationError("no token"), errs.KindAuthentication},
		{"permission", errs.NewPermissionDeniedError("list_sepulkas"), errs.KindPermission},
		{"conflict", errs.NewConflictError("username", nil), errs.KindConflict},
		{
			"wrapped permission beats validation",
			errors.Join(errs.NewValueIsInvalidError("name"), errs.NewPermissionDeniedError("create_sepulka")),
			errs.KindPermission,
		},
		{
			"fmt wrapped",
			fmt.Errorf("load: %w", errs.NewObjectNotFoundError("user", "bob")),
			errs.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Classify(tt.err))
		})
	}
}
