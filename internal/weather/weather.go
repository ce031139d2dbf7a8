// Package weather fetches the forecast shown in the home page widget.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/bilgisen/uknews/internal/cache"
	"github.com/bilgisen/uknews/internal/logger"
	"github.com/bilgisen/uknews/internal/metrics"
	"github.com/bilgisen/uknews/internal/models"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("weather api key not configured")

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	TTL     time.Duration
	Lat     float64
	Lon     float64
	// Now is the cache clock; nil uses time.Now.
	Now func() time.Time
}

// Service serves one cached snapshot for the configured coordinates. The
// snapshot is replaced wholesale on refresh. Concurrent refreshes are not
// coordinated and may both hit the API.
type Service struct {
	http     *resty.Client
	baseURL  string
	apiKey   string
	lat, lon float64
	cache    *cache.TimeBoxed[models.WeatherSnapshot]
	log      zerolog.Logger
}

func NewService(opts Options) *Service {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		http:    resty.New().SetTimeout(timeout),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		lat:     opts.Lat,
		lon:     opts.Lon,
		cache:   cache.NewTimeBoxed[models.WeatherSnapshot](ttl, opts.Now),
		log:     logger.For("weather"),
	}
}

// Current returns the cached snapshot while fresh, otherwise fetches a new
// one. A failed refresh leaves the previous value in place but stale.
func (s *Service) Current(ctx context.Context) (models.WeatherSnapshot, error) {
	if w, ok := s.cache.Get(); ok {
		metrics.RecordWeatherCache(true)
		return w, nil
	}
	metrics.RecordWeatherCache(false)

	w, err := s.fetch(ctx)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	s.cache.Set(w)
	return w, nil
}

func (s *Service) fetch(ctx context.Context) (models.WeatherSnapshot, error) {
	if s.apiKey == "" {
		return models.WeatherSnapshot{}, ErrNotConfigured
	}

	q := strconv.FormatFloat(s.lat, 'f', -1, 64) + "," + strconv.FormatFloat(s.lon, 'f', -1, 64)
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"key":  s.apiKey,
			"q":    q,
			"days": "1",
		}).
		Get(s.baseURL + "/forecast.json")
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to fetch weather: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.WeatherSnapshot{}, fmt.Errorf("unexpected weather status code %d", resp.StatusCode())
	}

	var w models.WeatherSnapshot
	if err := json.Unmarshal(resp.Body(), &w); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to parse weather response: %w", err)
	}
	if w.Location.Name == "" {
		return models.WeatherSnapshot{}, errors.New("weather response has no location")
	}

	s.log.Debug().Str("location", w.Location.Name).Float64("temp_c", w.Current.TempC).Msg("weather refreshed")
	return w, nil
}

// LocationLabel is the widget heading for w. Locations around Dehradun use
// the API name; anything else is marked as the visitor's own location.
func LocationLabel(w models.WeatherSnapshot, yourLocation string) string {
	name := w.Location.Name
	if strings.Contains(strings.ToLower(name), "dehradun") ||
		strings.Contains(strings.ToLower(w.Location.Region), "uttarakhand") {
		return name
	}
	return name + " " + yourLocation
}
