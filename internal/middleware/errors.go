package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/render"
)

// NewErrorHandler returns the app error handler. API paths get JSON, every
// other path gets the HTML error page in the request language.
func NewErrorHandler(r *render.Renderer, texts *i18n.Bundle) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Default status code
		code := fiber.StatusInternalServerError

		// Check if it's a fiber error
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		// Log the error
		event := log.Error()
		if code < fiber.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", code).
			Msg("HTTP error")

		if strings.HasPrefix(c.Path(), "/api/") || r == nil {
			return c.Status(code).JSON(fiber.Map{
				"error": http.StatusText(code),
			})
		}

		lang := Lang(c)
		data := render.ErrorData{
			Heading: texts.T(lang, "error.title"),
			Message: texts.T(lang, "error.retry"),
		}
		if code == fiber.StatusNotFound {
			data = render.ErrorData{
				Heading: texts.T(lang, "error.notFound"),
				Message: texts.T(lang, "article.notFoundText"),
			}
		}

		c.Status(code).Type("html", "utf-8")
		return r.Render(c, render.PageError, render.View{
			Lang:  lang,
			Title: data.Heading,
			Path:  c.Path(),
			Data:  data,
		})
	}
}
