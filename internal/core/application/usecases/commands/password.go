package commands

import (
	"unicode/utf8"

	"sepulka/internal/pkg/errs"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// checkPassword enforces length bounds. The upper bound is the bcrypt input limit.
func checkPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength || len(password) > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, MaxPasswordLength)
	}
	return nil
}
