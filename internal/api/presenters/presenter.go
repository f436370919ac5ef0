package presenters

import (
	"Fooddiddo-Backend/domain"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes the resource payload as-is with the given status.
func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	if data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(data)
}

// ErrorResponse renders the uniform error envelope. Unexpected errors are
// logged with request context and reported as a generic 500; the underlying
// message is only exposed outside production.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		log.Errorw("request failed",
			"error", err.Error(),
			"path", c.Path(),
			"method", c.Method(),
			"user_id", c.Locals("user_id"),
		)
		message := "internal server error"
		if os.Getenv("IS_PROD") != "true" {
			message = err.Error()
		}
		apiErr = domain.NewInternalServerError(message)
	}

	return c.Status(apiErr.Status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":      apiErr.Code,
			"message":   apiErr.Message,
			"details":   apiErr.Details,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"path":      c.Path(),
		},
	})
}
