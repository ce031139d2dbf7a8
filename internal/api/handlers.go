package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/bilgisen/uknews/internal/cache"
	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/middleware"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/page"
	"github.com/bilgisen/uknews/internal/render"
)

// PageQuery is the query of paginated listings. A missing page means 1.
type PageQuery struct {
	Page int `query:"page" validate:"omitempty,min=1,max=1000"`
}

type Handlers struct {
	pages    *page.Assembler
	renderer *render.Renderer
	texts    *i18n.Bundle
	cache    cache.Store
	offline  bool
}

func NewHandlers(pages *page.Assembler, renderer *render.Renderer, texts *i18n.Bundle, store cache.Store, offline bool) *Handlers {
	return &Handlers{
		pages:    pages,
		renderer: renderer,
		texts:    texts,
		cache:    store,
		offline:  offline,
	}
}

func (h *Handlers) render(c *fiber.Ctx, status int, name string, v render.View) error {
	v.Lang = middleware.Lang(c)
	v.Path = c.OriginalURL()
	c.Status(status).Type("html", "utf-8")
	return h.renderer.Render(c, name, v)
}

func (h *Handlers) renderError(c *fiber.Ctx, status int, headingKey, messageKey string) error {
	lang := middleware.Lang(c)
	data := render.ErrorData{
		Heading: h.texts.T(lang, headingKey),
		Message: h.texts.T(lang, messageKey),
	}
	return h.render(c, status, render.PageError, render.View{Title: data.Heading, Data: data})
}

// Home handles GET /
func (h *Handlers) Home(c *fiber.Ctx) error {
	p := h.pages.Home(c.UserContext(), middleware.Lang(c))
	v := render.View{Data: p}
	if p.Hero != nil {
		v.Image = p.Hero.ImageURL
	}
	return h.render(c, fiber.StatusOK, render.PageHome, v)
}

// Article handles GET /article/:slug
func (h *Handlers) Article(c *fiber.Ctx) error {
	p := h.pages.Article(c.UserContext(), c.Params("slug"), middleware.Lang(c))

	switch p.State {
	case page.StateNotFound:
		return h.renderError(c, fiber.StatusNotFound, "article.notFound", "article.notFoundText")
	case page.StateFailed:
		return h.renderError(c, fiber.StatusServiceUnavailable, "error.failed", "error.retry")
	}

	return h.render(c, fiber.StatusOK, render.PageArticle, render.View{
		Title:       p.Title,
		Description: p.MetaDescription,
		Image:       p.MetaImage,
		Data:        p,
	})
}

// Category handles GET /category/:category
func (h *Handlers) Category(c *fiber.Ctx) error {
	q := middleware.Query[PageQuery](c)
	p := h.pages.Category(c.UserContext(), c.Params("category"), q.Page, middleware.Lang(c))
	return h.listing(c, p)
}

// City handles GET /city/:city
func (h *Handlers) City(c *fiber.Ctx) error {
	q := middleware.Query[PageQuery](c)
	p := h.pages.City(c.UserContext(), strings.ToLower(c.Params("city")), q.Page, middleware.Lang(c))
	return h.listing(c, p)
}

func (h *Handlers) listing(c *fiber.Ctx, p page.ListingPage) error {
	switch p.State {
	case page.StateNotFound:
		return h.renderError(c, fiber.StatusNotFound, "listing.notFound", "listing.empty")
	case page.StateFailed:
		return h.renderError(c, fiber.StatusServiceUnavailable, "error.failed", "error.retry")
	}
	return h.render(c, fiber.StatusOK, render.PageListing, render.View{Title: p.Title, Data: p})
}

// Categories handles GET /categories
func (h *Handlers) Categories(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	p := h.pages.Categories(c.UserContext(), lang)
	return h.render(c, fiber.StatusOK, render.PageDirectory, render.View{
		Title: h.texts.T(lang, "listing.allCategories"),
		Data:  p,
	})
}

// Cities handles GET /cities
func (h *Handlers) Cities(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	p := h.pages.Cities(c.UserContext(), lang)
	return h.render(c, fiber.StatusOK, render.PageDirectory, render.View{
		Title: h.texts.T(lang, "listing.allCities"),
		Data:  p,
	})
}

// SwitchLanguage handles GET /lang/:lang and returns to the local page in
// ?next=.
func (h *Handlers) SwitchLanguage(c *fiber.Ctx) error {
	lang, ok := models.ParseLang(c.Params("lang"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported language")
	}
	middleware.SetLanguage(c, lang)

	next := c.Query("next", "/")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		next = "/"
	}
	return c.Redirect(next, fiber.StatusSeeOther)
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"offline": h.offline,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// PurgeCache handles POST /api/v1/admin/cache/purge
func (h *Handlers) PurgeCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"status": "purged", "keys": 0})
	}

	n, err := h.cache.Purge(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("Error purging list cache")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to purge cache",
		})
	}

	log.Info().Int("keys", n).Str("ip", c.IP()).Msg("List cache purged")
	return c.JSON(fiber.Map{
		"status": "purged",
		"keys":   n,
	})
}
