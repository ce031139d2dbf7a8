package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityRefAcceptsAllUpstreamShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CityRef
	}{
		{"plain string", `"Dehradun"`, CityRef{Name: Text("Dehradun", "Dehradun"), Plain: true}},
		{"bilingual", `{"hi":"नैनीताल","en":"Nainital"}`, CityRef{Name: Text("नैनीताल", "Nainital")}},
		{"full object", `{"id":4,"name":{"hi":"हरिद्वार","en":"Haridwar"},"state":"Uttarakhand"}`,
			CityRef{ID: 4, Name: Text("हरिद्वार", "Haridwar"), State: "Uttarakhand"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got CityRef
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArticleDecodesOptionalFields(t *testing.T) {
	raw := `{
		"id": 17,
		"slug": "char-dham",
		"title": {"hi": "चारधाम", "en": "Char Dham"},
		"description": "desc",
		"published_at": "2025-01-24T08:30:33.443768Z",
		"city": "Rishikesh",
		"author": {"id": "a-1", "username": "editor"}
	}`
	var a Article
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, FlexID("17"), a.ID)
	assert.Equal(t, FlexID("a-1"), a.Author.ID)
	assert.Nil(t, a.HoursAgo)
	assert.Nil(t, a.Category)
	assert.Zero(t, a.Views)
	assert.False(t, a.IsBreaking)
	assert.True(t, a.City.Plain)
}

func TestArticleAgePrefersUpstreamValue(t *testing.T) {
	now := time.Date(2025, 1, 24, 12, 0, 0, 0, time.UTC)
	a := Article{PublishedAt: "2025-01-24T02:00:00Z"}

	h, ok := a.Age(now)
	require.True(t, ok)
	assert.InDelta(t, 10.0, h, 0.001)

	a.HoursAgo = Hours(3)
	h, ok = a.Age(now)
	require.True(t, ok)
	assert.Equal(t, 3.0, h)

	_, ok = Article{}.Age(now)
	assert.False(t, ok)
}

func TestResolveBodyPriority(t *testing.T) {
	a := Article{Content: &ArticleContent{
		HI: &ContentVariant{HTML: "<p>नमस्ते</p>", Text: "नमस्ते"},
		EN: &ContentVariant{Text: "hello"},
	}}

	assert.Equal(t, ContentBody{Kind: BodyHTML, Value: "<p>नमस्ते</p>"}, ResolveBody(a, LangHindi))
	assert.Equal(t, ContentBody{Kind: BodyText, Value: "hello"}, ResolveBody(a, LangEnglish))
	assert.Equal(t, BodyEmpty, ResolveBody(Article{}, LangHindi).Kind)
}

func TestNormalizeClampsCounters(t *testing.T) {
	a := Article{Views: -3, Likes: 2, Shares: -1}
	a.Normalize()
	assert.Equal(t, 0, a.Views)
	assert.Equal(t, 2, a.Likes)
	assert.Equal(t, 0, a.Shares)
}

func TestDashboardFindArticleOrder(t *testing.T) {
	d := Dashboard{
		BreakingNews:         []Article{{Slug: "a", Description: "breaking"}},
		LatestNewsByCategory: []Article{{Slug: "a", Description: "latest"}, {Slug: "b"}},
	}
	got, ok := d.FindArticle("a")
	require.True(t, ok)
	assert.Equal(t, "breaking", got.Description)

	_, ok = d.FindArticle("b")
	assert.True(t, ok)
	_, ok = d.FindArticle("zzz")
	assert.False(t, ok)
}

func TestBilingualTextGet(t *testing.T) {
	b := Text("हिंदी", "")
	assert.Equal(t, "हिंदी", b.Get(LangEnglish))
	assert.Equal(t, "हिंदी", b.Get(LangHindi))
	assert.False(t, b.Complete())

	lang, ok := ParseLang(" EN ")
	assert.True(t, ok)
	assert.Equal(t, LangEnglish, lang)
	_, ok = ParseLang("fr")
	assert.False(t, ok)
}
