package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/page"
)

func newRenderer(t *testing.T, sanitize bool) *Renderer {
	texts, err := i18n.Load()
	require.NoError(t, err)
	r, err := New(texts, sanitize)
	require.NoError(t, err)
	return r
}

func renderDoc(t *testing.T, r *Renderer, name string, v View) *goquery.Document {
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, v))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestArticleBodies(t *testing.T) {
	r := newRenderer(t, true)
	p := page.ArticlePage{
		State:       page.StateLoaded,
		Title:       "Char Dham",
		Description: "fallback description",
		Body:        models.ContentBody{Kind: models.BodyHTML, Value: `<p>Hello<script>alert(1)</script></p>`},
	}

	doc := renderDoc(t, r, PageArticle, View{Lang: models.LangEnglish, Title: p.Title, Path: "/article/x", Data: p})
	assert.Equal(t, "Char Dham", doc.Find("article h1").Text())
	assert.Equal(t, "Hello", strings.TrimSpace(doc.Find(".body").Text()))
	assert.Zero(t, doc.Find(".body script").Length())

	text := "one <b>\n\n    two  spaced\n"
	p.Body = models.ContentBody{Kind: models.BodyText, Value: text}
	doc = renderDoc(t, r, PageArticle, View{Lang: models.LangEnglish, Data: p})
	assert.Zero(t, doc.Find(".body b").Length())
	assert.Equal(t, text, doc.Find(".body .plain-text").Text())

	p.Body = models.ContentBody{}
	doc = renderDoc(t, r, PageArticle, View{Lang: models.LangEnglish, Data: p})
	assert.Equal(t, "fallback description", strings.TrimSpace(doc.Find(".body").Text()))
}

func TestLayoutLanguage(t *testing.T) {
	r := newRenderer(t, false)
	doc := renderDoc(t, r, PageDirectory, View{
		Lang: models.LangHindi,
		Path: "/cities",
		Data: page.DirectoryPage{Kind: "city", Links: []page.Link{{Label: "देहरादून", Href: "/city/dehradun"}}},
	})

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "hi", lang)
	href, _ := doc.Find("a.lang-switch").Attr("href")
	assert.Equal(t, "/lang/en?next=%2fcities", href)
	assert.Equal(t, "सभी शहर", doc.Find("section.directory h1").Text())
	assert.Equal(t, 1, doc.Find("section.directory li").Length())
	assert.Equal(t, 5, doc.Find("nav.main-nav a[href^='/city/']").Length())
}

func TestListingEmptyAndPagination(t *testing.T) {
	r := newRenderer(t, false)

	doc := renderDoc(t, r, PageListing, View{Lang: models.LangEnglish, Data: page.ListingPage{
		State: page.StateEmpty, Kind: "city", Title: "Almora", Page: 1,
	}})
	assert.Equal(t, "No news available at the moment.", doc.Find("p.empty").Text())
	assert.Zero(t, doc.Find("nav.pagination").Length())

	doc = renderDoc(t, r, PageListing, View{Lang: models.LangEnglish, Data: page.ListingPage{
		State: page.StateLoaded, Kind: "category", Title: "Politics",
		Cards:   []page.Card{{Title: "A", Href: "/article/a"}},
		Page:    2, TotalPages: 3,
		PrevURL: "/category/politics?page=1", NextURL: "/category/politics?page=3",
	}})
	assert.Equal(t, 1, doc.Find("article.card").Length())
	next, _ := doc.Find("a[rel=next]").Attr("href")
	assert.Equal(t, "/category/politics?page=3", next)
}

func TestHomeWeatherStates(t *testing.T) {
	r := newRenderer(t, false)

	doc := renderDoc(t, r, PageHome, View{Lang: models.LangEnglish, Data: page.HomePage{
		Weather: page.WeatherWidget{OK: true, Location: "Dehradun", TempC: 18.4, Condition: "Sunny"},
	}})
	assert.Equal(t, "18°C", doc.Find(".weather .temp").Text())

	doc = renderDoc(t, r, PageHome, View{Lang: models.LangEnglish, Data: page.HomePage{
		Weather: page.WeatherWidget{Message: "Could not load weather data"},
	}})
	assert.Equal(t, "Could not load weather data", doc.Find(".weather-error").Text())
}

func TestUnknownPage(t *testing.T) {
	r := newRenderer(t, false)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", View{}))
}
