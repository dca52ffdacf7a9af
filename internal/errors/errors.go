package errors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a business-rule failure carrying the HTTP status it should be
// reported with. Handlers never map errors themselves; the global fiber error
// handler translates AppErrors into the uniform JSON envelope.
type AppError struct {
	Status  int
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

func Unauthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

func Validation(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// Shared sentinels. Signin failures deliberately collapse into a single
// message so callers cannot probe which accounts exist or are suspended;
// the differentiated reason is logged server-side only.
var (
	ErrInvalidCredentials   = Unauthorized("invalid email or password")
	ErrEmailAlreadyInUse    = Conflict("email already in use")
	ErrInvalidToken         = Unauthorized("invalid or expired token")
	ErrMissingToken         = Unauthorized("authorization token required")
	ErrForbidden            = Forbidden("you are not allowed to access this resource")
	ErrUserNotFound         = NotFound("user not found")
	ErrIncorrectOldPassword = Unauthorized("incorrect old password")
)
