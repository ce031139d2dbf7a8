package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is a news category. The dashboard variant also carries Count.
type Category struct {
	ID        int    `json:"id"`
	NameEN    string `json:"name_en"`
	NameHI    string `json:"name_hi"`
	CreatedAt string `json:"created_at"`
	Count     int    `json:"count,omitempty"`
}

// Name returns the category names as a bilingual value.
func (c Category) Name() BilingualText {
	return BilingualText{HI: c.NameHI, EN: c.NameEN}
}

// City is an entry of the upstream cities list.
type City struct {
	ID    int           `json:"id"`
	Name  BilingualText `json:"name"`
	State string        `json:"state"`
}

// CityRef is the city attached to an article. Upstream sends it as a plain
// string, as a bilingual {hi, en} object, or as a full city object.
type CityRef struct {
	ID    int
	Name  BilingualText
	State string
	// Plain is set when the upstream value was a bare string.
	Plain bool
}

type cityObject struct {
	ID    int             `json:"id,omitempty"`
	Name  json.RawMessage `json:"name,omitempty"`
	State string          `json:"state,omitempty"`
	HI    string          `json:"hi,omitempty"`
	EN    string          `json:"en,omitempty"`
}

func (c *CityRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = CityRef{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CityRef{Name: BilingualText{HI: s, EN: s}, Plain: true}
		return nil
	}

	var obj cityObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("city: %w", err)
	}
	ref := CityRef{ID: obj.ID, State: obj.State, Name: BilingualText{HI: obj.HI, EN: obj.EN}}
	if len(obj.Name) > 0 {
		var name BilingualText
		if obj.Name[0] == '"' {
			var s string
			if err := json.Unmarshal(obj.Name, &s); err != nil {
				return fmt.Errorf("city name: %w", err)
			}
			name = BilingualText{HI: s, EN: s}
		} else if err := json.Unmarshal(obj.Name, &name); err != nil {
			return fmt.Errorf("city name: %w", err)
		}
		ref.Name = name
	}
	*c = ref
	return nil
}

func (c CityRef) MarshalJSON() ([]byte, error) {
	if c.Plain {
		return json.Marshal(c.Name.HI)
	}
	if c.ID == 0 && c.State == "" {
		return json.Marshal(c.Name)
	}
	return json.Marshal(struct {
		ID    int           `json:"id,omitempty"`
		Name  BilingualText `json:"name"`
		State string        `json:"state,omitempty"`
	}{c.ID, c.Name, c.State})
}

// DashboardCity is the aggregated city entry of the dashboard snapshot.
type DashboardCity struct {
	Name  BilingualText `json:"name"`
	Count int           `json:"count"`
}

// Dashboard is the aggregate read used by the home page and as the last
// resort source for article lookups.
type Dashboard struct {
	BreakingNews         []Article       `json:"breaking_news"`
	TrendingNews         []TrendingItem  `json:"trending_news"`
	LatestNewsByCategory []Article       `json:"latest_news_by_category"`
	Categories           []Category      `json:"categories"`
	Cities               []DashboardCity `json:"cities"`
}

// FindArticle searches breaking news first, then the latest-by-category list.
func (d Dashboard) FindArticle(slug string) (Article, bool) {
	for _, a := range d.BreakingNews {
		if a.Slug == slug {
			return a, true
		}
	}
	for _, a := range d.LatestNewsByCategory {
		if a.Slug == slug {
			return a, true
		}
	}
	return Article{}, false
}

// IsBreaking reports whether slug appears in the breaking news list.
func (d Dashboard) IsBreaking(slug string) bool {
	for _, a := range d.BreakingNews {
		if a.Slug == slug {
			return true
		}
	}
	return false
}
