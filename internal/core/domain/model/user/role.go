package user

import (
	"fmt"
	"strings"

	"sepulka/internal/pkg/errs"
)

// Role is the single workflow role a user holds. Roles are mutually
// exclusive and carry no hierarchy; staff access is the separate
// User.IsStaff flag.
//
// Each role owns one stage of the sepulka workflow:
//
//	Shmurdik   ──> creates orders, assigns the process responsible
//	Grymzik    ──> vaccinates and processes orders
//	Fufelnitsa ──> delivers orders
//
// The integer values are persisted and must not be renumbered.
type Role int

const (
	// Fufelnitsa delivers orders. It is the default role for new users.
	Fufelnitsa Role = iota

	// Grymzik runs the process stage of an order.
	Grymzik

	// Shmurdik creates orders and hands them over to a Grymzik.
	Shmurdik
)

// DefaultRole is assigned when signup does not name a role.
const DefaultRole = Fufelnitsa

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Fufelnitsa: "fufelnitsa",
		Grymzik:    "grymzik",
		Shmurdik:   "shmurdik",
	}
}

// Validate checks that the role is one of Fufelnitsa, Grymzik or Shmurdik.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lower-case label ("shmurdik") or "unknown".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ParseRole converts a label such as "grymzik" (case-insensitive) into a Role.
//
// Example:
//
//	role, err := user.ParseRole(req.Role)
//	if err != nil {
//	    return err // value is invalid: role (cause: "boss" is not a valid role)
//	}
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, label := range getRoleStrings() {
		if label == needle {
			return role, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// HasRole is the only role primitive of the domain: it reports whether u
// is non-nil and holds exactly role r.
func HasRole(u *User, r Role) bool {
	return u != nil && u.role == r
}

// RequireRole returns a ValueIsInvalidError in the "<username> is not a <role>"
// form when u does not hold r. paramName names the field being assigned
// (creator, responsible).
func RequireRole(paramName string, u *User, r Role) error {
	if u == nil {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !HasRole(u, r) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is not a %s", u.Username(), r),
		)
	}
	return nil
}
