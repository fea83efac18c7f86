package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/pkg/errs"
)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// User is an account of the sepulka service.
//
// A user holds exactly one Role and an orthogonal staff flag. The password
// is stored only as a hash produced by a ports.PasswordHasher; the domain
// never sees plain text passwords.
//
// Example:
//
//	hash, _ := hasher.Hash("s3cret")
//	alice, err := user.NewUser("alice", "alice@example.com", hash, user.Shmurdik)
//	if err != nil {
//	    return err
//	}
//	user.HasRole(alice, user.Shmurdik) // true
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role
	isStaff      bool
	isActive     bool
	dateJoined   time.Time

	isConstructed bool
}

// NewUser creates an active, non-staff user with a fresh id.
func NewUser(username, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		id:            kernel.NewUUID(),
		isActive:      true,
		dateJoined:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user. It runs the same field validation
// as NewUser.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	role Role,
	isStaff, isActive bool,
	dateJoined time.Time,
) (*User, error) {
	u := &User{
		isStaff:       isStaff,
		isActive:      isActive,
		dateJoined:    dateJoined,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) IsEqual(other *User) bool {
	return u != nil && other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) DateJoined() time.Time {
	return u.dateJoined
}

// ChangeProfile replaces username, email and role in one step. The staff
// flag is not part of the profile and cannot be changed here.
func (u *User) ChangeProfile(username, email string, role Role) error {
	next := *u
	if err := errors.Join(
		next.setUsername(username),
		next.setEmail(email),
		next.setRole(role),
	); err != nil {
		return err
	}
	*u = next
	return nil
}

// ChangePasswordHash replaces the stored hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// GrantStaff marks the user as staff. Only the bootstrap path uses it.
func (u *User) GrantStaff() {
	u.isStaff = true
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > MaxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", n, 1, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return errs.NewValueIsInvalidErrorWithCause(
			"username",
			fmt.Errorf("%q may contain only letters, digits and @/./+/-/_", username),
		)
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		u.email = ""
		return nil
	}
	if len(email) > MaxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 0, MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid e-mail address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
