package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/citystrata-service/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError maps an AppError to its transport status; anything else
// degrades to a generic 503 so no raw store error leaks to clients.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.IsAppError(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(errors.ErrStoreUnavailable.StatusCode).JSON(ErrorResponse{
		Error: errors.ErrStoreUnavailable,
	})
}
