// Package auth is the user slice of the state tree: sign-in, registration,
// session restore and logout.
package auth

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Action types.
const (
	TypeLogin           = "user/LOGIN"
	TypeLoginSuccess    = "user/LOGIN_SUCCESS"
	TypeLoginError      = "user/LOGIN_ERROR"
	TypeRegister        = "user/REGISTER"
	TypeRegisterSuccess = "user/REGISTER_SUCCESS"
	TypeRegisterError   = "user/REGISTER_ERROR"
	TypeSession         = "user/SESSION"
	TypeSessionSuccess  = "user/SESSION_SUCCESS"
	TypeSessionError    = "user/SESSION_ERROR"
	TypeLogout          = "user/LOGOUT"
	TypeReset           = "user/RESET"
)

// Login requests a sign-in.
type Login struct {
	Credentials user.Credentials `json:"credentials"`
}

// LoginSuccess installs the signed-in user.
type LoginSuccess struct {
	User user.User `json:"user"`
}

// LoginError records a failed sign-in.
type LoginError struct {
	Error *domain.Failure `json:"error"`
}

// Register requests a new account.
type Register struct {
	Credentials user.Credentials `json:"credentials"`
}

// RegisterSuccess installs the newly registered user.
type RegisterSuccess struct {
	User user.User `json:"user"`
}

// RegisterError records a failed registration.
type RegisterError struct {
	Error *domain.Failure `json:"error"`
}

// Session requests the user behind an existing token.
type Session struct {
	Token string `json:"token"`
}

// SessionSuccess installs the restored user.
type SessionSuccess struct {
	User user.User `json:"user"`
}

// SessionError records a failed session lookup. The user, if any, is
// kept; a token that no longer resolves is cleared with Reset first.
type SessionError struct {
	Error *domain.Failure `json:"error"`
}

// Logout signs the user out.
type Logout struct {
	Token string `json:"token"`
}

// Reset returns the slice to its initial state.
type Reset struct{}

func (Login) Type() string           { return TypeLogin }
func (LoginSuccess) Type() string    { return TypeLoginSuccess }
func (LoginError) Type() string      { return TypeLoginError }
func (Register) Type() string        { return TypeRegister }
func (RegisterSuccess) Type() string { return TypeRegisterSuccess }
func (RegisterError) Type() string   { return TypeRegisterError }
func (Session) Type() string         { return TypeSession }
func (SessionSuccess) Type() string  { return TypeSessionSuccess }
func (SessionError) Type() string    { return TypeSessionError }
func (Logout) Type() string          { return TypeLogout }
func (Reset) Type() string           { return TypeReset }

// RegisterActions adds every user action to r.
func RegisterActions(r *redux.Registry) {
	redux.Register[Login](r)
	redux.Register[LoginSuccess](r)
	redux.Register[LoginError](r)
	redux.Register[Register](r)
	redux.Register[RegisterSuccess](r)
	redux.Register[RegisterError](r)
	redux.Register[Session](r)
	redux.Register[SessionSuccess](r)
	redux.Register[SessionError](r)
	redux.Register[Logout](r)
	redux.Register[Reset](r)
}

// State is the user slice. User is nil while signed out.
type State struct {
	User  *user.User      `json:"user"`
	Phase domain.Phase    `json:"phase"`
	Error *domain.Failure `json:"error"`
}

// Initial returns the signed-out, clean slice.
func Initial() *State {
	return &State{Phase: domain.PhaseClean}
}

// Equal reports structural equality.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Phase == other.Phase && s.Error.Equal(other.Error) && s.User.Equal(other.User)
}

// Token returns the session token, or "" while signed out.
func (s *State) Token() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Token
}

// Reduce applies a to s. A nil s is treated as Initial().
func Reduce(s *State, a redux.Action) *State {
	if s == nil {
		s = Initial()
	}

	switch a := a.(type) {
	case Login, Register, Session:
		return &State{User: s.User, Phase: domain.PhaseLoading}

	case LoginSuccess:
		return signedIn(a.User)
	case RegisterSuccess:
		return signedIn(a.User)
	case SessionSuccess:
		return signedIn(a.User)

	case LoginError:
		return &State{User: s.User, Phase: domain.PhaseError, Error: a.Error}
	case RegisterError:
		return &State{User: s.User, Phase: domain.PhaseError, Error: a.Error}
	case SessionError:
		return &State{User: s.User, Phase: domain.PhaseError, Error: a.Error}

	case Logout, Reset:
		return Initial()
	}

	return s
}

func signedIn(u user.User) *State {
	return &State{User: &u, Phase: domain.PhaseSuccess}
}
