package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateUserRequest struct {
	Name string `json:"name"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
