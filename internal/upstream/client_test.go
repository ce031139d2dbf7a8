package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/uknews/internal/cache"
)

type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]func(w http.ResponseWriter)
	hits   []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	f := &fakeAPI{routes: map[string]func(w http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits = append(f.hits, r.URL.Path)
		h, ok := f.routes[r.URL.Path]
		f.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) json(path string, status int, body string) {
	f.routes[path] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeAPI) html(path string) {
	f.routes[path] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}
}

func (f *fakeAPI) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, h := range f.hits {
		if h == path {
			n++
		}
	}
	return n
}

const dashboardBody = `{"success":true,"data":{
	"breaking_news":[{"slug":"landslide-alert","title":{"hi":"भूस्खलन","en":"Landslide"},"views":-3,"published_at":"2025-01-24T10:00:00Z"}],
	"trending_news":[{"slug":"t1","title":{"hi":"क","en":"k"}}],
	"latest_news_by_category":[{"slug":"school-reopens","title":{"hi":"स्कूल","en":"School"},"city":"Dehradun","published_at":"2025-01-24T09:00:00Z"}],
	"categories":[{"id":1,"name_en":"Politics","name_hi":"राजनीति","created_at":"","count":3}],
	"cities":[{"name":{"hi":"देहरादून","en":"Dehradun"},"count":4}]}}`

func newTestClient(bases ...string) *Client {
	return NewClient(Options{BaseURLs: bases, Timeout: 2 * time.Second})
}

func TestArticleBySlugPrimaryWins(t *testing.T) {
	primary, p := newFakeAPI(t)
	secondary, s := newFakeAPI(t)
	primary.json("/news/slug/char-dham", 200, `{"success":true,"data":{"slug":"char-dham","title":{"hi":"चारधाम","en":"Char Dham"},"hours_ago":3}}`)
	secondary.json("/news/slug/char-dham", 200, `{"success":true,"data":{"slug":"char-dham","title":{"hi":"x","en":"x"}}}`)

	got, err := newTestClient(p.URL, s.URL).ArticleBySlug(context.Background(), "char-dham")
	require.NoError(t, err)
	assert.Equal(t, SourceSlug, got.Source)
	assert.Equal(t, "Char Dham", got.Article.Title.EN)
	assert.Zero(t, secondary.count("/news/slug/char-dham"))
}

func TestArticleBySlugFallsThroughToSecondaryAndDashboard(t *testing.T) {
	primary, p := newFakeAPI(t)
	secondary, s := newFakeAPI(t)
	primary.html("/news/slug/school-reopens")
	secondary.json("/news/slug/school-reopens", 200, `{"success":false,"message":"News not found"}`)
	primary.json("/news/dashboard", 200, dashboardBody)

	got, err := newTestClient(p.URL, s.URL).ArticleBySlug(context.Background(), "school-reopens")
	require.NoError(t, err)
	assert.Equal(t, SourceDashboard, got.Source)
	assert.Equal(t, "School", got.Article.Title.EN)
	assert.Equal(t, 1, secondary.count("/news/slug/school-reopens"))
	assert.Zero(t, secondary.count("/news/dashboard"))
}

func TestArticleBySlugDashboardMissIsNotFound(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.routes["/news/slug/gone"] = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	primary.json("/news/dashboard", 200, dashboardBody)

	_, err := newTestClient(p.URL).ArticleBySlug(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleBySlugClassification(t *testing.T) {
	t.Run("all absent and dashboard down", func(t *testing.T) {
		primary, p := newFakeAPI(t)
		primary.routes["/news/dashboard"] = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusBadGateway)
		}

		_, err := newTestClient(p.URL).ArticleBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("transport failure and dashboard down", func(t *testing.T) {
		primary, p := newFakeAPI(t)
		primary.routes["/news/slug/missing"] = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		primary.routes["/news/dashboard"] = func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_, err := newTestClient(p.URL).ArticleBySlug(context.Background(), "missing")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Len(t, te.Failures, 2)
	})
}

func TestDashboardNormalizesCounters(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/dashboard", 200, dashboardBody)

	d, err := newTestClient(p.URL).Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, d.BreakingNews, 1)
	assert.Zero(t, d.BreakingNews[0].Views)
	assert.Equal(t, 3, d.Categories[0].Count)
}

func TestNewsByCategoryTriesVariants(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/category/Politics", 200, `{"success":true,"data":{"data":[{"slug":"a","title":{"hi":"अ","en":"A"}}],"limit":10,"page":2,"total":11,"totalPages":2}}`)

	got, err := newTestClient(p.URL).NewsByCategory(context.Background(), "POLITICS", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPages)
	require.Len(t, got.Data, 1)
	assert.Equal(t, 1, primary.count("/news/category/POLITICS"))
	assert.Equal(t, 1, primary.count("/news/category/politics"))
	assert.Equal(t, 1, primary.count("/news/category/Politics"))
}

func TestNewsByCityUsesEnglishName(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/city/Dehradun", 200, `{"success":true,"data":{"data":[],"limit":10,"page":1,"total":0,"totalPages":0}}`)

	got, err := newTestClient(p.URL).NewsByCity(context.Background(), "dehradun", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, got.Data)
	assert.Equal(t, 1, primary.count("/news/city/Dehradun"))
}

func TestListEnvelopes(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/categories", 200, `{"success":true,"data":{"data":[{"id":1,"name_en":"Politics","name_hi":"राजनीति","created_at":"2025-01-01"}]}}`)
	primary.json("/cities", 200, `{"success":true,"data":[{"id":1,"name":{"hi":"देहरादून","en":"Dehradun"},"state":"Uttarakhand"}]}`)

	c := newTestClient(p.URL)
	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "राजनीति", cats[0].NameHI)

	cities, err := c.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Dehradun", cities[0].Name.EN)
}

func TestListsAreCached(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/cities", 200, `{"success":true,"data":{"cities":[{"id":1,"name":{"hi":"देहरादून","en":"Dehradun"},"state":"Uttarakhand"}]}}`)

	c := NewClient(Options{
		BaseURLs: []string{p.URL},
		Cache:    cache.NewMemoryStore("test:"),
		ListTTL:  time.Hour,
	})
	for range 3 {
		cities, err := c.Cities(context.Background())
		require.NoError(t, err)
		require.Len(t, cities, 1)
	}
	assert.Equal(t, 1, primary.count("/cities"))
}

func TestCategoryCacheIgnoresNameCase(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/category/Politics", 200, `{"success":true,"data":{"data":[{"slug":"vote","title":{"hi":"मतदान","en":"Vote"}}],"limit":10,"page":1,"total":1,"totalPages":1}}`)

	c := NewClient(Options{
		BaseURLs:      []string{p.URL},
		Cache:         cache.NewMemoryStore("test:"),
		CollectionTTL: 5 * time.Minute,
	})
	for _, name := range []string{"Politics", "politics", "POLITICS"} {
		res, err := c.NewsByCategory(context.Background(), name, 1, 10)
		require.NoError(t, err, name)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "vote", res.Data[0].Slug)
	}
	assert.Equal(t, 1, primary.count("/news/category/Politics"))
	assert.Zero(t, primary.count("/news/category/politics"))
}

func TestEmptyDataIsAbsent(t *testing.T) {
	primary, p := newFakeAPI(t)
	primary.json("/news/categories", 200, `{"success":true,"data":null}`)

	_, err := newTestClient(p.URL).Categories(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
