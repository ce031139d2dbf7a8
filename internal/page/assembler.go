// Package page turns resolved upstream data into render-ready page models.
// Every upstream failure is absorbed here and surfaces only as a page State.
package page

import (
	"context"
	"errors"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/bilgisen/uknews/internal/fallback"
	"github.com/bilgisen/uknews/internal/format"
	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/logger"
	"github.com/bilgisen/uknews/internal/metrics"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/slug"
	"github.com/bilgisen/uknews/internal/upstream"
)

// ContentSource is the upstream content API.
type ContentSource interface {
	ArticleBySlug(ctx context.Context, slug string) (upstream.ResolvedArticle, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
	NewsByCategory(ctx context.Context, name string, page, limit int) (models.Page[models.Article], error)
	NewsByCity(ctx context.Context, citySlug string, page, limit int) (models.Page[models.Article], error)
	Categories(ctx context.Context) ([]models.Category, error)
	Cities(ctx context.Context) ([]models.City, error)
}

type WeatherSource interface {
	Current(ctx context.Context) (models.WeatherSnapshot, error)
}

const (
	sourceFallback = "fallback"
	excerptRunes   = 160
	trendingSize   = 5
	secondarySize  = 2
)

type Options struct {
	Content  ContentSource
	Weather  WeatherSource
	Fallback *fallback.Provider
	Texts    *i18n.Bundle
	// Offline serves everything from the fallback provider.
	Offline bool
	Limit   int
	Now     func() time.Time
}

type Assembler struct {
	content  ContentSource
	weather  WeatherSource
	fallback *fallback.Provider
	texts    *i18n.Bundle
	offline  bool
	limit    int
	now      func() time.Time
	strict   *bluemonday.Policy
	log      zerolog.Logger
}

func NewAssembler(opts Options) *Assembler {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	fb := opts.Fallback
	if fb == nil {
		fb = fallback.New()
	}
	return &Assembler{
		content:  opts.Content,
		weather:  opts.Weather,
		fallback: fb,
		texts:    opts.Texts,
		offline:  opts.Offline || opts.Content == nil,
		limit:    limit,
		now:      now,
		strict:   bluemonday.StrictPolicy(),
		log:      logger.For("page"),
	}
}

// ResolveArticle returns the article for slug and its source. Upstream
// exhaustion falls back to the fallback provider by exact slug.
func (a *Assembler) ResolveArticle(ctx context.Context, s string) (models.Article, string, error) {
	if a.offline {
		if art, ok := a.fallback.Article(s); ok {
			return art, sourceFallback, nil
		}
		return models.Article{}, "", upstream.ErrNotFound
	}

	res, err := a.content.ArticleBySlug(ctx, s)
	if err == nil {
		return res.Article, string(res.Source), nil
	}
	if art, ok := a.fallback.Article(s); ok {
		metrics.RecordFallback("article")
		a.log.Warn().Err(err).Str("slug", s).Msg("serving fallback article")
		return art, sourceFallback, nil
	}
	return models.Article{}, "", err
}

// Article assembles the article page for slug.
func (a *Assembler) Article(ctx context.Context, s string, lang models.Lang) ArticlePage {
	p := ArticlePage{Lang: lang, Slug: s}

	art, source, err := a.ResolveArticle(ctx, s)
	switch {
	case err == nil:
		p = a.articlePage(art, lang)
		p.Source = source
	case errors.Is(err, upstream.ErrNotFound):
		p.State = StateNotFound
	default:
		a.log.Error().Err(err).Str("slug", s).Msg("article resolution failed")
		p.State = StateFailed
	}

	metrics.RecordPage("article", string(p.State))
	return p
}

func (a *Assembler) articlePage(art models.Article, lang models.Lang) ArticlePage {
	c := a.card(art, lang)
	p := ArticlePage{
		State:       StateLoaded,
		Lang:        lang,
		Slug:        art.Slug,
		Title:       c.Title,
		Body:        models.ResolveBody(art, lang),
		Description: art.Description,
		ImageURL:    art.ImageURL,
		Category:    c.Category,
		City:        c.City,
		Age:         c.Age,
		Date:        c.Date,
		Views:       format.Count(art.Views, lang),
		Likes:       format.Count(art.Likes, lang),
		Shares:      format.Count(art.Shares, lang),
		Breaking:    art.IsBreaking,
		MetaImage:   art.MetaImage,
	}
	if art.Author != nil {
		p.Author = art.Author.Username
	}
	p.MetaDescription = a.excerpt(art.MetaDescription)
	if p.MetaDescription == "" {
		p.MetaDescription = c.Excerpt
	}
	if p.MetaImage == "" {
		p.MetaImage = art.ImageURL
	}
	return p
}

// Category assembles a category listing. page values below 1 mean 1.
func (a *Assembler) Category(ctx context.Context, name string, page int, lang models.Lang) ListingPage {
	if page < 1 {
		page = 1
	}
	p := ListingPage{Lang: lang, Kind: "category", Slug: name, Page: page}

	var (
		res models.Page[models.Article]
		err error
	)
	if a.offline {
		res = a.fallbackListing(page, func(art models.Article) bool {
			return art.Category != nil && slug.CategorySlug(art.Category.NameEN) == strings.ToLower(name)
		})
	} else {
		res, err = a.content.NewsByCategory(ctx, name, page, a.limit)
	}

	display := slug.CategoryDisplayName(name)
	p.Title, p.Lossy = display.Name.Get(lang), display.Lossy
	if err == nil && len(res.Data) > 0 && res.Data[0].Category != nil {
		if t := res.Data[0].Category.Name().Get(lang); t != "" {
			p.Title, p.Lossy = t, false
		}
	}

	a.fillListing(&p, res, err)
	metrics.RecordPage("category", string(p.State))
	return p
}

// City assembles a city listing for a city slug.
func (a *Assembler) City(ctx context.Context, citySlug string, page int, lang models.Lang) ListingPage {
	if page < 1 {
		page = 1
	}
	p := ListingPage{Lang: lang, Kind: "city", Slug: citySlug, Page: page}

	var (
		res models.Page[models.Article]
		err error
	)
	if a.offline {
		res = a.fallbackListing(page, func(art models.Article) bool {
			return art.City != nil && slug.CitySlug(art.City.Name.EN) == strings.ToLower(citySlug)
		})
	} else {
		res, err = a.content.NewsByCity(ctx, citySlug, page, a.limit)
	}

	display := slug.CityDisplayName(citySlug)
	p.Title, p.Lossy = display.Name.Get(lang), display.Lossy
	if err == nil && len(res.Data) > 0 && res.Data[0].City != nil && !res.Data[0].City.Plain {
		if t := res.Data[0].City.Name.Get(lang); t != "" {
			p.Title, p.Lossy = t, false
		}
	}

	a.fillListing(&p, res, err)
	metrics.RecordPage("city", string(p.State))
	return p
}

func (a *Assembler) fillListing(p *ListingPage, res models.Page[models.Article], err error) {
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		p.State = StateNotFound
		return
	case err != nil:
		a.log.Error().Err(err).Str("kind", p.Kind).Str("slug", p.Slug).Msg("listing resolution failed")
		p.State = StateFailed
		return
	}

	p.Total, p.TotalPages = res.Total, res.TotalPages
	if len(res.Data) == 0 {
		p.State = StateEmpty
		return
	}
	p.State = StateLoaded
	p.Cards = make([]Card, len(res.Data))
	for i, art := range res.Data {
		p.Cards[i] = a.card(art, p.Lang)
	}

	base := "/" + p.Kind + "/" + url.PathEscape(p.Slug) + "?page="
	if p.Page > 1 {
		p.PrevURL = base + strconv.Itoa(p.Page-1)
	}
	if p.Page < p.TotalPages {
		p.NextURL = base + strconv.Itoa(p.Page+1)
	}
}

func (a *Assembler) fallbackListing(page int, keep func(models.Article) bool) models.Page[models.Article] {
	var all []models.Article
	for _, art := range a.fallback.Articles() {
		if keep(art) {
			all = append(all, art)
		}
	}
	out := models.Page[models.Article]{Limit: a.limit, Page: page, Total: len(all)}
	out.TotalPages = (len(all) + a.limit - 1) / a.limit
	start := (page - 1) * a.limit
	if start < len(all) {
		out.Data = all[start:min(start+a.limit, len(all))]
	}
	return out
}

// card builds a teaser. Missing optional fields are omitted.
func (a *Assembler) card(art models.Article, lang models.Lang) Card {
	c := Card{
		Slug:     art.Slug,
		Href:     "/article/" + art.Slug,
		Title:    art.Title.Get(lang),
		Excerpt:  a.excerpt(art.Description),
		ImageURL: art.ImageURL,
		Views:    format.Count(art.Views, lang),
		Breaking: art.IsBreaking,
	}
	if art.Category != nil && !art.Category.Name().IsZero() {
		c.Category = &Link{
			Label: art.Category.Name().Get(lang),
			Href:  "/category/" + slug.CategorySlug(art.Category.NameEN),
		}
	}
	if art.City != nil && !art.City.Name.IsZero() {
		en := art.City.Name.EN
		if en == "" {
			en = art.City.Name.HI
		}
		c.City = &Link{
			Label: art.City.Name.Get(lang),
			Href:  "/city/" + slug.CitySlug(en),
		}
	}
	if h, ok := art.Age(a.now()); ok {
		c.Age = format.TimeAgo(h, lang)
	}
	if t, ok := art.PublishedTime(); ok {
		c.Date = format.LongDate(t, lang)
	}
	return c
}

// excerpt strips markup and shortens s to a plain-text teaser.
func (a *Assembler) excerpt(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(a.strict.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= excerptRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:excerptRunes])) + "…"
}
