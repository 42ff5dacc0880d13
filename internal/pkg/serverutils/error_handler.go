package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"noteful-be/internal/apperror"
	"noteful-be/internal/pkg/logger"
)

type errorBody struct {
	Message string `json:"message"`
}

// NewErrorHandler renders domain errors as {message} with their mapped
// status. Anything unclassified is logged and surfaced as a bare 500 so no
// internal detail leaks to the client.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			return ctx.Status(appErr.Status).JSON(errorBody{Message: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(errorBody{Message: fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{Message: "Internal Server Error"})
	}
}
