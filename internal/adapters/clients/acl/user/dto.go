// Package user implements the Anti-Corruption Layer translators for the
// remote API's authentication resources.
package user

// UserDTO matches the remote User schema returned by the auth endpoints.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// CredentialsDTO matches the remote login and registration request bodies.
// Email is only sent on registration.
type CredentialsDTO struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password" masq:"secret"`
}
