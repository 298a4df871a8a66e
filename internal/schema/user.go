package schema

import (
	"github.com/mrlokans/learnvocab/internal/entities"
)

// UserForm is the insertable shape for a user record. The password is
// kept as provided; hashing is outside this layer.
type UserForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f UserForm) Validate() (*entities.User, *ValidationError) {
	ve := newValidationError()

	if f.Username == "" {
		ve.add("username", msgRequired)
	}
	if f.Password == "" {
		ve.add("password", msgRequired)
	}

	if ve.hasErrors() {
		return nil, ve
	}

	return &entities.User{
		Username: f.Username,
		Password: f.Password,
	}, nil
}
