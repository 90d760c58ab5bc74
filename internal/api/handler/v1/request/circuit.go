package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// AssignUserRequest carries the assignee for a circuit. A null userId
// unassigns the current user.
type AssignUserRequest struct {
	UserID *string `json:"userId"`
}

func (req *AssignUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Length(1, 100)),
	)
}

// UpdateTaskNumberRequest carries the task label for a circuit. A null or
// whitespace-only value clears it.
type UpdateTaskNumberRequest struct {
	TaskNumber *string `json:"taskNumber"`
}

func (req *UpdateTaskNumberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TaskNumber, validation.Length(0, 120)),
	)
}
