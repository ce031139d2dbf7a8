// Package fallback supplies static substitute content used when the upstream
// API cannot be reached or when the site runs offline.
package fallback

import (
	"errors"
	"fmt"

	"github.com/bilgisen/uknews/internal/models"
)

// Snapshot is the serialisable form of the fallback tables.
type Snapshot struct {
	Articles   []models.Article      `json:"articles"`
	Categories []models.Category     `json:"categories"`
	Cities     []models.City         `json:"cities"`
	Trending   []models.TrendingItem `json:"trending"`
}

// Provider serves a fixed snapshot. Every read returns a fresh deep copy, so
// callers can never mutate the tables and repeated reads compare equal.
type Provider struct {
	snap Snapshot
}

// New returns a provider backed by the built-in tables.
func New() *Provider {
	return &Provider{snap: builtinSnapshot()}
}

// FromSnapshot validates s and wraps it in a provider.
func FromSnapshot(s Snapshot) (*Provider, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Provider{snap: cloneSnapshot(s)}, nil
}

// Validate checks that every entry has the shape of live data.
func (s Snapshot) Validate() error {
	var errs []error
	if len(s.Articles) == 0 {
		errs = append(errs, errors.New("no articles"))
	}
	for i, a := range s.Articles {
		if a.Slug == "" {
			errs = append(errs, fmt.Errorf("article %d: missing slug", i))
		}
		if !a.Title.Complete() {
			errs = append(errs, fmt.Errorf("article %q: title needs both languages", a.Slug))
		}
		if _, ok := a.PublishedTime(); !ok {
			errs = append(errs, fmt.Errorf("article %q: missing or invalid published_at", a.Slug))
		}
	}
	for _, c := range s.Categories {
		if !c.Name().Complete() {
			errs = append(errs, fmt.Errorf("category %d: name needs both languages", c.ID))
		}
	}
	for _, c := range s.Cities {
		if !c.Name.Complete() {
			errs = append(errs, fmt.Errorf("city %d: name needs both languages", c.ID))
		}
	}
	for _, t := range s.Trending {
		if !t.Title.Complete() {
			errs = append(errs, fmt.Errorf("trending %q: title needs both languages", t.Slug))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid fallback snapshot: %w", errors.Join(errs...))
	}
	return nil
}

func (p *Provider) Articles() []models.Article {
	out := make([]models.Article, len(p.snap.Articles))
	for i, a := range p.snap.Articles {
		out[i] = cloneArticle(a)
	}
	return out
}

// Article looks up a fallback article by slug.
func (p *Provider) Article(slug string) (models.Article, bool) {
	for _, a := range p.snap.Articles {
		if a.Slug == slug {
			return cloneArticle(a), true
		}
	}
	return models.Article{}, false
}

func (p *Provider) Categories() []models.Category {
	return append([]models.Category(nil), p.snap.Categories...)
}

func (p *Provider) Cities() []models.City {
	return append([]models.City(nil), p.snap.Cities...)
}

func (p *Provider) Trending() []models.TrendingItem {
	return append([]models.TrendingItem(nil), p.snap.Trending...)
}

// Snapshot returns a copy of the full tables.
func (p *Provider) Snapshot() Snapshot {
	return cloneSnapshot(p.snap)
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Articles:   make([]models.Article, len(s.Articles)),
		Categories: append([]models.Category(nil), s.Categories...),
		Cities:     append([]models.City(nil), s.Cities...),
		Trending:   append([]models.TrendingItem(nil), s.Trending...),
	}
	for i, a := range s.Articles {
		out.Articles[i] = cloneArticle(a)
	}
	return out
}

func cloneArticle(a models.Article) models.Article {
	if a.Content != nil {
		c := *a.Content
		c.HI = cloneVariant(c.HI)
		c.EN = cloneVariant(c.EN)
		a.Content = &c
	}
	if a.Category != nil {
		c := *a.Category
		a.Category = &c
	}
	if a.City != nil {
		c := *a.City
		a.City = &c
	}
	if a.HoursAgo != nil {
		h := *a.HoursAgo
		a.HoursAgo = &h
	}
	if a.Author != nil {
		au := *a.Author
		a.Author = &au
	}
	return a
}

func cloneVariant(v *models.ContentVariant) *models.ContentVariant {
	if v == nil {
		return nil
	}
	out := *v
	if v.JSON != nil {
		out.JSON = append([]byte(nil), v.JSON...)
	}
	return &out
}
