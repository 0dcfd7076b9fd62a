package common

import "fmt"

type ErrorCode int

const (
	CodeSystem ErrorCode = iota
	CodeInvalidArgument
	CodeNotFound
	CodePermission
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeNotFound:
		return "not found"
	case CodePermission:
		return "permission denied"
	default:
		return "system error"
	}
}

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidArgumentError(err error, msg string) error {
	return &AppError{Code: CodeInvalidArgument, Message: msg, Err: err}
}

func NotFoundError(err error, msg string) error {
	return &AppError{Code: CodeNotFound, Message: msg, Err: err}
}

func PermissionError(err error, msg string) error {
	return &AppError{Code: CodePermission, Message: msg, Err: err}
}

func SystemError(err error) error {
	return &AppError{Code: CodeSystem, Message: "internal error", Err: err}
}
