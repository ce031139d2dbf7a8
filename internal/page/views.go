package page

import (
	"github.com/bilgisen/uknews/internal/models"
)

// State is the outcome of assembling a page.
type State string

const (
	StateLoaded   State = "loaded"
	StateEmpty    State = "empty"
	StateNotFound State = "not_found"
	StateFailed   State = "failed"
)

// Link is a labelled internal URL.
type Link struct {
	Label string
	Href  string
	Count int
}

// Card is an article teaser.
type Card struct {
	Slug     string
	Href     string
	Title    string
	Excerpt  string
	ImageURL string
	Category *Link
	City     *Link
	Age      string
	Date     string
	Views    string
	Breaking bool
}

type ArticlePage struct {
	State       State
	Lang        models.Lang
	Slug        string
	Title       string
	Body        models.ContentBody
	Description string
	ImageURL    string
	Category    *Link
	City        *Link
	Age         string
	Date        string
	Views       string
	Likes       string
	Shares      string
	Breaking    bool
	Author      string
	// Meta* feed the document head.
	MetaDescription string
	MetaImage       string
	// Source is where the article came from: slug, dashboard or fallback.
	Source string
}

// ListingPage is a category or city listing.
type ListingPage struct {
	State State
	Lang  models.Lang
	Kind  string
	Slug  string
	Title string
	// Lossy is set when Title was guessed from the slug.
	Lossy      bool
	Cards      []Card
	Page       int
	TotalPages int
	Total      int
	PrevURL    string
	NextURL    string
}

// WeatherWidget is the render-ready weather box. When OK is false only
// Message is meaningful.
type WeatherWidget struct {
	OK           bool
	Message      string
	Location     string
	Condition    string
	Icon         string
	TempC        float64
	FeelsLikeC   float64
	MaxC         float64
	MinC         float64
	Humidity     int
	ChanceOfRain int
	WindKph      float64
	VisKm        float64
	LastUpdated  string
}

type HomePage struct {
	Lang       models.Lang
	Hero       *Card
	Secondary  []Card
	Trending   []Link
	Latest     []Card
	Categories []Link
	Cities     []Link
	Weather    WeatherWidget
	// FromFallback is set when the dashboard sections use fallback content.
	FromFallback bool
}

// DirectoryPage lists all categories or all cities.
type DirectoryPage struct {
	Lang         models.Lang
	Kind         string
	Links        []Link
	FromFallback bool
}
