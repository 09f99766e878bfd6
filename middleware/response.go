package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the uniform JSON envelope used by the few JSON
// endpoints (the admin notification badge)
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes a 422 with per-field error messages
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
