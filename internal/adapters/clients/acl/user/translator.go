package user

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
)

// ToDomainUser converts a remote UserDTO to a domain User. When the
// response omits the token, fallbackToken is used.
func ToDomainUser(dto *UserDTO, fallbackToken string) *user.User {
	u := &user.User{
		ID:       dto.ID,
		Username: dto.Username,
		Email:    dto.Email,
		Token:    dto.Token,
	}
	if u.Token == "" {
		u.Token = fallbackToken
	}
	return u
}

// ToCredentialsRequest converts domain credentials to the request body.
func ToCredentialsRequest(c user.Credentials) CredentialsDTO {
	return CredentialsDTO{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	}
}
