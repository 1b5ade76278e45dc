// Package user holds the authenticated user entity and login credentials.
package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

// Field limits for registration.
const (
	MinPasswordLength = 8
	MaxUsernameLength = 64
)

// User is the signed-in account together with its session token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Equal reports structural equality; a nil user equals only nil.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return *u == *other
}

// Credentials is the form payload for login and registration. The password
// is never serialized.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"-" masq:"secret"`
}

// Normalized returns a copy with surrounding whitespace removed and the
// email lowercased. The password is left untouched.
func (c Credentials) Normalized() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

// ValidateLogin checks the fields required to sign in.
func (c Credentials) ValidateLogin() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if c.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRegister checks the fields required to create an account.
func (c Credentials) ValidateRegister() error {
	fields := make(map[string]string)

	switch n := utf8.RuneCountInString(strings.TrimSpace(c.Username)); {
	case !utf8.ValidString(c.Username):
		fields["username"] = domain.MsgInvalid
	case n == 0:
		fields["username"] = domain.MsgRequired
	case n > MaxUsernameLength:
		fields["username"] = domain.MsgTooLong
	}

	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = domain.MsgRequired
	} else if _, err := mail.ParseAddress(c.Email); err != nil || !utf8.ValidString(c.Email) {
		fields["email"] = domain.MsgInvalid
	}

	switch {
	case c.Password == "":
		fields["password"] = domain.MsgRequired
	case utf8.RuneCountInString(c.Password) < MinPasswordLength:
		fields["password"] = domain.MsgTooShort
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
