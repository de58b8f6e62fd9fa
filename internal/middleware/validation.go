package middleware

import (
	"github.com/gofiber/fiber/v2"

	"quizsheet/internal/validation"
)

// Locals keys set by the validation middleware.
const (
	LocalResultID = "validated_result_id"
	LocalFormat   = "validated_format"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateResultID checks the :id path parameter and stores it in Locals.
func (vm *ValidationMiddleware) ValidateResultID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateResultID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(LocalResultID, id)
		return c.Next()
	}
}

// ValidateFormat checks the :format path parameter and stores the parsed format.
func (vm *ValidationMiddleware) ValidateFormat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, errors := vm.validator.ValidateFormat(c.Params("format"))
		if len(errors) > 0 {
			return errors
		}
		c.Locals(LocalFormat, f)
		return c.Next()
	}
}
