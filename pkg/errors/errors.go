package errors

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound      = errors.New("dispatch task not found")
	ErrTaskAlreadyExists = errors.New("dispatch task with this PEA dispatch number already exists")

	ErrOilCompanyNotFound  = errors.New("oil company not found")
	ErrTransporterNotFound = errors.New("transporter not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrDepotNotFound       = errors.New("depot not found")

	ErrPasswordMismatch = errors.New("passwords do not match")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
