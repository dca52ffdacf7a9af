package response

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Meta    *query.Meta `json:"meta,omitempty"`
	Data    any         `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func OK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Message: message, Data: data})
}

func Created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(envelope{Success: true, Message: message, Data: data})
}

// List wraps a paginated result with its meta block.
func List(c *fiber.Ctx, message string, meta query.Meta, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Message: message, Meta: &meta, Data: data})
}

// ErrorHandler is the app-wide fiber error handler. Business failures
// (*AppError) keep their status and message; anything unexpected becomes an
// opaque 500 so internals never leak to clients.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *autherror.AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.Status).JSON(errorEnvelope{
				Success: false,
				Message: appErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorEnvelope{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		logger.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(errorEnvelope{
			Success: false,
			Message: "something went wrong",
		})
	}
}
