package page

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/bilgisen/uknews/internal/metrics"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/slug"
	"github.com/bilgisen/uknews/internal/weather"
)

type homeData struct {
	dashboard    models.Dashboard
	dashboardErr error
	categories   []models.Category
	catErr       error
	cities       []models.City
	cityErr      error
	weather      models.WeatherSnapshot
	weatherErr   error
}

// Home assembles the home page. The dashboard, both lists and the weather are
// fetched concurrently; a failure of one never fails the page.
func (a *Assembler) Home(ctx context.Context, lang models.Lang) HomePage {
	d := a.loadHome(ctx)
	p := HomePage{Lang: lang}

	// the featured block takes one list: breaking, else latest, else fallback
	var featured []models.Article
	if d.dashboardErr == nil {
		featured = d.dashboard.BreakingNews
		if len(featured) == 0 {
			featured = d.dashboard.LatestNewsByCategory
		}
	} else {
		a.log.Warn().Err(d.dashboardErr).Msg("dashboard unavailable, using fallback sections")
	}
	if len(featured) == 0 {
		featured = a.fallback.Articles()
		p.FromFallback = true
		metrics.RecordFallback("dashboard")
	}

	for i, art := range featured {
		if i > secondarySize {
			break
		}
		c := a.card(art, lang)
		if d.dashboardErr == nil && d.dashboard.IsBreaking(art.Slug) {
			c.Breaking = true
		}
		if i == 0 {
			p.Hero = &c
			continue
		}
		p.Secondary = append(p.Secondary, c)
	}

	trending := a.fallback.Trending()
	if d.dashboardErr == nil && len(d.dashboard.TrendingNews) > 0 {
		trending = d.dashboard.TrendingNews
	} else {
		metrics.RecordFallback("trending")
	}
	if len(trending) > trendingSize {
		trending = trending[:trendingSize]
	}
	for _, t := range trending {
		p.Trending = append(p.Trending, Link{Label: t.Title.Get(lang), Href: "/article/" + t.Slug})
	}

	latest := d.dashboard.LatestNewsByCategory
	if p.FromFallback {
		latest = a.fallback.Articles()
	}
	for _, art := range latest {
		p.Latest = append(p.Latest, a.card(art, lang))
	}

	p.Categories = a.categoryLinks(d, lang)
	p.Cities = a.cityLinks(d, lang)
	p.Weather = a.weatherWidget(d.weather, d.weatherErr, lang)

	state := StateLoaded
	if p.FromFallback {
		state = State(sourceFallback)
	}
	metrics.RecordPage("home", string(state))
	return p
}

func (a *Assembler) loadHome(ctx context.Context) homeData {
	var d homeData
	if a.offline {
		d.dashboardErr = errOffline
		d.catErr = errOffline
		d.cityErr = errOffline
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			d.dashboard, d.dashboardErr = a.content.Dashboard(gctx)
			return nil
		})
		g.Go(func() error {
			d.categories, d.catErr = a.content.Categories(gctx)
			return nil
		})
		g.Go(func() error {
			d.cities, d.cityErr = a.content.Cities(gctx)
			return nil
		})
		if a.weather != nil {
			g.Go(func() error {
				d.weather, d.weatherErr = a.weather.Current(gctx)
				return nil
			})
		}
		_ = g.Wait()
	}
	if a.weather == nil {
		d.weatherErr = errNoWeather
	}
	return d
}

var (
	errOffline   = errors.New("offline mode")
	errNoWeather = errors.New("weather not configured")
)

func (a *Assembler) categoryLinks(d homeData, lang models.Lang) []Link {
	cats := d.categories
	if d.catErr != nil || len(cats) == 0 {
		if d.dashboardErr == nil && len(d.dashboard.Categories) > 0 {
			cats = d.dashboard.Categories
		} else {
			cats = a.fallback.Categories()
		}
	}
	links := make([]Link, 0, len(cats))
	for _, c := range cats {
		links = append(links, Link{
			Label: c.Name().Get(lang),
			Href:  "/category/" + slug.CategorySlug(c.NameEN),
			Count: c.Count,
		})
	}
	return links
}

func (a *Assembler) cityLinks(d homeData, lang models.Lang) []Link {
	cities := d.cities
	if d.cityErr != nil || len(cities) == 0 {
		cities = a.fallback.Cities()
	}
	counts := map[string]int{}
	if d.dashboardErr == nil {
		for _, c := range d.dashboard.Cities {
			counts[c.Name.EN] = c.Count
		}
	}
	links := make([]Link, 0, len(cities))
	for _, c := range cities {
		links = append(links, Link{
			Label: c.Name.Get(lang),
			Href:  "/city/" + slug.CitySlug(c.Name.EN),
			Count: counts[c.Name.EN],
		})
	}
	return links
}

func (a *Assembler) weatherWidget(w models.WeatherSnapshot, err error, lang models.Lang) WeatherWidget {
	if err != nil {
		if !errors.Is(err, errNoWeather) {
			a.log.Warn().Err(err).Msg("weather unavailable")
		}
		return WeatherWidget{Message: a.t(lang, "weather.error")}
	}
	today, ok := w.Today()
	if !ok {
		return WeatherWidget{Message: a.t(lang, "weather.unavailable")}
	}
	return WeatherWidget{
		OK:           true,
		Location:     weather.LocationLabel(w, a.t(lang, "weather.yourLocation")),
		Condition:    a.condition(lang, w.Current.Condition.Text),
		Icon:         w.Current.Condition.Icon,
		TempC:        w.Current.TempC,
		FeelsLikeC:   w.Current.FeelsLikeC,
		MaxC:         today.Day.MaxTempC,
		MinC:         today.Day.MinTempC,
		Humidity:     w.Current.Humidity,
		ChanceOfRain: today.Day.DailyChanceOfRain,
		WindKph:      w.Current.WindKph,
		VisKm:        w.Current.VisKm,
		LastUpdated:  w.Location.Localtime,
	}
}

// Categories assembles the full category directory.
func (a *Assembler) Categories(ctx context.Context, lang models.Lang) DirectoryPage {
	p := DirectoryPage{Lang: lang, Kind: "category"}
	var cats []models.Category
	var err error
	if !a.offline {
		cats, err = a.content.Categories(ctx)
	}
	if a.offline || err != nil || len(cats) == 0 {
		if err != nil {
			a.log.Warn().Err(err).Msg("categories unavailable, using fallback")
		}
		cats = a.fallback.Categories()
		p.FromFallback = true
		metrics.RecordFallback("categories")
	}
	p.Links = a.categoryLinks(homeData{categories: cats, dashboardErr: errOffline}, lang)
	metrics.RecordPage("categories", string(StateLoaded))
	return p
}

// Cities assembles the full city directory.
func (a *Assembler) Cities(ctx context.Context, lang models.Lang) DirectoryPage {
	p := DirectoryPage{Lang: lang, Kind: "city"}
	var cities []models.City
	var err error
	if !a.offline {
		cities, err = a.content.Cities(ctx)
	}
	if a.offline || err != nil || len(cities) == 0 {
		if err != nil {
			a.log.Warn().Err(err).Msg("cities unavailable, using fallback")
		}
		cities = a.fallback.Cities()
		p.FromFallback = true
		metrics.RecordFallback("cities")
	}
	p.Links = a.cityLinks(homeData{cities: cities, dashboardErr: errOffline}, lang)
	metrics.RecordPage("cities", string(StateLoaded))
	return p
}

func (a *Assembler) t(lang models.Lang, key string) string {
	if a.texts == nil {
		return key
	}
	return a.texts.T(lang, key)
}

func (a *Assembler) condition(lang models.Lang, text string) string {
	if a.texts == nil {
		return text
	}
	return a.texts.Condition(lang, text)
}
