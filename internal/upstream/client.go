// Package upstream resolves content from the remote news API. Every resource
// is obtained by trying an ordered list of candidate requests and keeping the
// first usable response.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/bilgisen/uknews/internal/cache"
	"github.com/bilgisen/uknews/internal/logger"
	"github.com/bilgisen/uknews/internal/metrics"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/slug"
	"github.com/bilgisen/uknews/internal/utils"
)

// Source tells where a resolved article came from.
type Source string

const (
	SourceSlug      Source = "slug"
	SourceDashboard Source = "dashboard"
)

// ResolvedArticle is an article together with its source.
type ResolvedArticle struct {
	Article models.Article
	Source  Source
}

// Options configures a Client.
type Options struct {
	BaseURLs []string
	Timeout  time.Duration
	// Cache is optional. When nil nothing is cached.
	Cache         cache.Store
	ListTTL       time.Duration
	CollectionTTL time.Duration
}

type Client struct {
	http          *resty.Client
	bases         []string
	cache         cache.Store
	listTTL       time.Duration
	collectionTTL time.Duration
	log           zerolog.Logger
}

// NewClient creates a client. Requests are never retried; the candidate list
// is the only source of redundancy.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	bases := make([]string, 0, len(opts.BaseURLs))
	for _, b := range opts.BaseURLs {
		if b = strings.TrimRight(b, "/"); b != "" {
			bases = append(bases, b)
		}
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		bases:         bases,
		cache:         opts.Cache,
		listTTL:       opts.ListTTL,
		collectionTTL: opts.CollectionTTL,
		log:           logger.For("upstream"),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// getData performs one request and returns the envelope payload when the
// response is usable.
func (c *Client) getData(ctx context.Context, rawURL string, query url.Values) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, failed(0, fmt.Errorf("request failed: %w", err))
	}

	status := resp.StatusCode()
	if status == http.StatusNotFound {
		return nil, absent(status, errors.New("not found"))
	}
	if status < 200 || status > 299 {
		return nil, failed(status, errors.New("unexpected status"))
	}
	if ct := resp.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, failed(status, fmt.Errorf("unexpected content type %q", ct))
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, failed(status, fmt.Errorf("failed to decode envelope: %w", err))
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "success is false"
		}
		return nil, absent(status, errors.New(msg))
	}
	if isEmptyData(env.Data) {
		return nil, absent(status, errors.New("empty data"))
	}
	return env.Data, nil
}

func isEmptyData(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`:
		return true
	}
	return false
}

// candidate builds a Candidate that fetches base+path and decodes the payload.
// A payload that fails to decode is a transport failure of that candidate.
func candidate[T any](c *Client, base, path string, query url.Values, decode func(json.RawMessage) (T, error)) Candidate[T] {
	u := base + path
	name := u
	if len(query) > 0 {
		name += "?" + query.Encode()
	}
	return Candidate[T]{
		Name: name,
		Fetch: func(ctx context.Context) (T, error) {
			var zero T
			raw, err := c.getData(ctx, u, query)
			if err != nil {
				return zero, err
			}
			v, err := decode(raw)
			if err != nil {
				return zero, failed(http.StatusOK, fmt.Errorf("failed to decode data: %w", err))
			}
			return v, nil
		},
	}
}

func decodeInto[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

// decodeList accepts either a bare array or an object holding the array
// under field.
func decodeList[T any](field string) func(json.RawMessage) ([]T, error) {
	return func(raw json.RawMessage) ([]T, error) {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			return decodeInto[[]T](raw)
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		inner, ok := obj[field]
		if !ok {
			return nil, fmt.Errorf("missing %q list", field)
		}
		return decodeInto[[]T](inner)
	}
}

// ArticleBySlug resolves an article from the slug endpoint of each base URL,
// then from the dashboard. A slug endpoint hit is returned as is and never
// merged with dashboard data.
func (c *Client) ArticleBySlug(ctx context.Context, s string) (ResolvedArticle, error) {
	path := "/news/slug/" + url.PathEscape(s)
	cands := make([]Candidate[models.Article], 0, len(c.bases))
	for _, b := range c.bases {
		cands = append(cands, candidate(c, b, path, nil, decodeInto[models.Article]))
	}

	a, _, err := FirstSuccess(ctx, "article", cands)
	if err == nil {
		a.Normalize()
		return ResolvedArticle{Article: a, Source: SourceSlug}, nil
	}
	if ctx.Err() != nil {
		return ResolvedArticle{}, err
	}

	dash, dashErr := c.Dashboard(ctx)
	if dashErr == nil {
		if found, ok := dash.FindArticle(s); ok {
			c.log.Debug().Str("slug", s).Msg("article resolved from dashboard")
			return ResolvedArticle{Article: found, Source: SourceDashboard}, nil
		}
		return ResolvedArticle{}, &NotFoundError{Resource: "article " + s, Failures: Failures(err)}
	}

	failures := slices.Concat(Failures(err), Failures(dashErr))
	if errors.Is(err, ErrNotFound) {
		return ResolvedArticle{}, &NotFoundError{Resource: "article " + s, Failures: failures}
	}
	return ResolvedArticle{}, &TransportError{Resource: "article " + s, Failures: failures}
}

// Dashboard fetches the aggregate home snapshot. It is never cached.
func (c *Client) Dashboard(ctx context.Context) (models.Dashboard, error) {
	cands := make([]Candidate[models.Dashboard], 0, len(c.bases))
	for _, b := range c.bases {
		cands = append(cands, candidate(c, b, "/news/dashboard", nil, decodeInto[models.Dashboard]))
	}
	d, _, err := FirstSuccess(ctx, "dashboard", cands)
	if err != nil {
		return models.Dashboard{}, err
	}
	for i := range d.BreakingNews {
		d.BreakingNews[i].Normalize()
	}
	for i := range d.LatestNewsByCategory {
		d.LatestNewsByCategory[i].Normalize()
	}
	return d, nil
}

// NewsByCategory lists a category page, trying the name verbatim, lower-cased
// and capitalised.
func (c *Client) NewsByCategory(ctx context.Context, name string, page, limit int) (models.Page[models.Article], error) {
	key := utils.Key("news", "category", strings.ToLower(name), strconv.Itoa(page), strconv.Itoa(limit))
	return cached(ctx, c, key, c.collectionTTL, func() (models.Page[models.Article], error) {
		return c.listing(ctx, "category", "/news/category/", slug.Variants(name), page, limit)
	})
}

// NewsByCity lists a city page. The slug is mapped to the English display
// name first since the API keys cities by name.
func (c *Client) NewsByCity(ctx context.Context, citySlug string, page, limit int) (models.Page[models.Article], error) {
	name := slug.CityDisplayName(citySlug).Name.EN
	key := utils.Key("news", "city", strings.ToLower(citySlug), strconv.Itoa(page), strconv.Itoa(limit))
	return cached(ctx, c, key, c.collectionTTL, func() (models.Page[models.Article], error) {
		return c.listing(ctx, "city", "/news/city/", slug.Variants(name), page, limit)
	})
}

func (c *Client) listing(ctx context.Context, resource, prefix string, variants []string, page, limit int) (models.Page[models.Article], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var cands []Candidate[models.Page[models.Article]]
	for _, b := range c.bases {
		for _, v := range variants {
			cands = append(cands, candidate(c, b, prefix+url.PathEscape(v), query, decodeInto[models.Page[models.Article]]))
		}
	}
	p, _, err := FirstSuccess(ctx, resource, cands)
	if err != nil {
		return models.Page[models.Article]{}, err
	}
	for i := range p.Data {
		p.Data[i].Normalize()
	}
	return p, nil
}

// Categories returns the full category list.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, c, utils.Key("categories"), c.listTTL, func() ([]models.Category, error) {
		var cands []Candidate[[]models.Category]
		for _, b := range c.bases {
			cands = append(cands, candidate(c, b, "/news/categories", nil, decodeList[models.Category]("data")))
		}
		v, _, err := FirstSuccess(ctx, "categories", cands)
		return v, err
	})
}

// Cities returns the full city list.
func (c *Client) Cities(ctx context.Context) ([]models.City, error) {
	return cached(ctx, c, utils.Key("cities"), c.listTTL, func() ([]models.City, error) {
		var cands []Candidate[[]models.City]
		for _, b := range c.bases {
			cands = append(cands, candidate(c, b, "/cities", nil, decodeList[models.City]("cities")))
		}
		v, _, err := FirstSuccess(ctx, "cities", cands)
		return v, err
	})
}

// cached serves key from the list cache or stores the result of load.
// Cache errors are logged and never fail the request.
func cached[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if c.cache == nil || ttl <= 0 {
		return load()
	}

	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("list cache read failed")
	}
	if ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			metrics.RecordListCache(true)
			return v, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}
	metrics.RecordListCache(false)

	v, err := load()
	if err != nil {
		return v, err
	}
	if data, err := json.Marshal(v); err == nil {
		if err := c.cache.Set(ctx, key, data, ttl); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("list cache write failed")
		}
	}
	return v, nil
}
