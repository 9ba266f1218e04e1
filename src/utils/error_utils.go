// error_utils.go
package utils

import (
	"Mergington-Activities/src/models"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: detail,
	})
}

// ErrorHandler renders framework errors (unknown routes, bad methods, panics
// caught by recover) with the same {"detail": ...} body as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	detail := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		detail = fe.Message
	}
	return HandleError(c, status, detail)
}
