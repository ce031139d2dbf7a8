package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator is a struct that holds the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates the provided struct
func (v *Validator) Validate(s any) error {
	return v.validate.Struct(s)
}

const queryLocal = "queryParams"

// ValidateQuery parses the query string into a fresh T per request and
// validates it. Failures become 400 errors handled by the error handler.
func ValidateQuery[T any]() fiber.Handler {
	v := NewValidator()

	return func(c *fiber.Ctx) error {
		q := new(T)
		if err := c.QueryParser(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
		}

		if err := v.Validate(q); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				fields := make([]string, 0, len(verrs))
				for _, fe := range verrs {
					fields = append(fields, fe.Field()+":"+fe.Tag())
				}
				return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters: "+strings.Join(fields, ", "))
			}
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
		}

		c.Locals(queryLocal, q)
		return c.Next()
	}
}

// Query returns the validated query of the current request.
func Query[T any](c *fiber.Ctx) *T {
	if q, ok := c.Locals(queryLocal).(*T); ok {
		return q
	}
	return new(T)
}
