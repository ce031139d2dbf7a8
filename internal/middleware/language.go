package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/models"
)

// LangCookie persists the visitor's language choice.
const LangCookie = "preferred-language"

const langLocal = "lang"

// Language resolves the request language: a ?lang= override (which is also
// persisted), then the cookie, then Hindi. Accept-Language is ignored.
func Language() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := models.DefaultLang
		if q := c.Query("lang"); q != "" {
			if l, ok := i18n.Match(q); ok {
				lang = l
				SetLanguage(c, l)
			}
		} else if v := c.Cookies(LangCookie); v != "" {
			if l, ok := models.ParseLang(v); ok {
				lang = l
			}
		}

		c.Locals(langLocal, lang)
		c.Set(fiber.HeaderContentLanguage, string(lang))
		c.Vary(fiber.HeaderCookie)
		return c.Next()
	}
}

// Lang returns the language resolved for the request.
func Lang(c *fiber.Ctx) models.Lang {
	if l, ok := c.Locals(langLocal).(models.Lang); ok {
		return l
	}
	return models.DefaultLang
}

// SetLanguage stores lang in the preference cookie.
func SetLanguage(c *fiber.Ctx, lang models.Lang) {
	c.Cookie(&fiber.Cookie{
		Name:     LangCookie,
		Value:    string(lang),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(langLocal, lang)
}
