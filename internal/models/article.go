package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FlexID accepts identifiers sent either as JSON numbers or strings.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

// ContentVariant is one language's article body. At most one of the fields is
// authoritative; HTML wins over Text.
type ContentVariant struct {
	JSON json.RawMessage `json:"json,omitempty"`
	HTML string          `json:"html,omitempty"`
	Text string          `json:"text,omitempty"`
}

// ArticleContent carries the per-language bodies.
type ArticleContent struct {
	HI *ContentVariant `json:"hi,omitempty"`
	EN *ContentVariant `json:"en,omitempty"`
}

// For returns the variant for lang or nil.
func (c *ArticleContent) For(lang Lang) *ContentVariant {
	if c == nil {
		return nil
	}
	if lang == LangEnglish {
		return c.EN
	}
	return c.HI
}

// Author is the byline of an article
type Author struct {
	ID       FlexID `json:"id,omitempty"`
	Username string `json:"username"`
}

// Article is the read-only projection of an upstream news item.
type Article struct {
	ID              FlexID          `json:"id,omitempty"`
	Slug            string          `json:"slug"`
	Title           BilingualText   `json:"title"`
	Content         *ArticleContent `json:"content,omitempty"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	Category        *Category       `json:"category,omitempty"`
	City            *CityRef        `json:"city,omitempty"`
	Views           int             `json:"views"`
	Likes           int             `json:"likes"`
	Shares          int             `json:"shares"`
	IsBreaking      bool            `json:"is_breaking"`
	MetaDescription string          `json:"meta_description,omitempty"`
	MetaImage       string          `json:"meta_image,omitempty"`
	PublishedAt     string          `json:"published_at"`
	HoursAgo        *float64        `json:"hours_ago,omitempty"`
	Author          *Author         `json:"author,omitempty"`
}

// Normalize clamps counters that must never be negative.
func (a *Article) Normalize() {
	if a.Views < 0 {
		a.Views = 0
	}
	if a.Likes < 0 {
		a.Likes = 0
	}
	if a.Shares < 0 {
		a.Shares = 0
	}
}

// PublishedTime parses PublishedAt. The zero time and false are returned when
// the value is missing or malformed.
func (a Article) PublishedTime() (time.Time, bool) {
	if a.PublishedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, a.PublishedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the article age in hours. The upstream hours_ago value takes
// precedence; otherwise it is derived from published_at.
func (a Article) Age(now time.Time) (float64, bool) {
	if a.HoursAgo != nil {
		return *a.HoursAgo, true
	}
	t, ok := a.PublishedTime()
	if !ok {
		return 0, false
	}
	h := now.Sub(t).Hours()
	if h < 0 {
		h = 0
	}
	return h, true
}

// Hours is a helper for building literal articles.
func Hours(h float64) *float64 {
	return &h
}

// TrendingItem is the slim projection used by the dashboard trending list.
type TrendingItem struct {
	Slug  string        `json:"slug"`
	Title BilingualText `json:"title"`
}

// Page is the upstream pagination envelope for list endpoints.
type Page[T any] struct {
	Data       []T `json:"data"`
	Limit      int `json:"limit"`
	Page       int `json:"page"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
