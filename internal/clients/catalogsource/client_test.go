package catalogsource_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/http/httputil"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genroll/roulette-api/internal/clients/catalogsource"
	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/pkg/clock"
)

const legendWikitext = "intro\n" +
	"* {{Enemy|Crab Tsar}}\n" +
	"* {{Enemy|Mystery Legend}}\n" +
	"==Locations==\n" +
	"* {{Enemy|Hidden One}}\n"

// fakeUpstream serves a miniature genshin-db dataset plus a Fandom API
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	serveJSON := func(pattern, body string) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}

	serveJSON("/data/index/English/characters.json", `{
		"namemap": {"hutao": "Hu Tao", "aloy": "Aloy"},
		"categories": {"5": ["hutao"], "ELEMENT_PYRO": ["hutao"], "WEAPON_POLE": ["hutao"]}
	}`)
	serveJSON("/data/index/Russian/characters.json", `{"namemap": {"hutao": "Ху Тао"}}`)
	serveJSON("/data/index/ChineseSimplified/characters.json", `{"namemap": {}}`)
	serveJSON("/data/index/Japanese/characters.json", `{"namemap": {}}`)
	serveJSON("/data/index/Korean/characters.json", `{"namemap": {}}`)
	serveJSON("/data/image/characters.json", `{"hutao": {"filename_icon": "UI_Hutao"}, "aloy": {}}`)

	serveJSON("/data/index/English/enemies.json", `{
		"namemap": {"azhdaha": "Azhdaha", "andrius": "Andrius", "crabtsar": "Crab Tsar"},
		"categories": {"Enemies of Note": ["azhdaha"], "BOSS": ["azhdaha", "andrius"]}
	}`)
	serveJSON("/data/index/Russian/enemies.json", `{"namemap": {"azhdaha": "Аждаха", "crabtsar": "Краб-царь"}}`)
	serveJSON("/data/index/ChineseSimplified/enemies.json", `{"namemap": {}}`)
	serveJSON("/data/index/Japanese/enemies.json", `{"namemap": {}}`)
	serveJSON("/data/index/Korean/enemies.json", `{"namemap": {}}`)
	serveJSON("/data/image/enemies.json", `{
		"azhdaha": {"filename_icon": "UI_Azhdaha"},
		"andrius": {"filename_icon": "UI_Andrius"},
		"crabtsar": {"filename_icon": "UI_CrabTsar"}
	}`)

	mux.HandleFunc("/fandom", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		if q.Get("action") == "parse" {
			fmt.Fprintf(w, `{"parse": {"wikitext": {"*": %q}}}`, legendWikitext)
			return
		}
		title := q.Get("titles")
		fmt.Fprintf(w, `{"query": {"pages": {"1": {"title": %q, "thumbnail": {"source": "https://wiki.test/%s.png"}}}}}`,
			title, title)
	})

	return httptest.NewServer(mux)
}

func newClient(t *testing.T, baseURL string) catalogsource.Client {
	t.Helper()
	c, err := catalogsource.New(&catalogsource.Config{
		Clock:        clock.NewFixed(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)),
		DataBaseURL:  baseURL + "/data",
		FandomAPIURL: baseURL + "/fandom",
		HakushUIBase: "https://ui.test",
		RetryDelay:   time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func TestFetchBuildsFullCatalog(t *testing.T) {
	server := fakeUpstream(t)
	defer server.Close()

	got, err := newClient(t, server.URL).Fetch(context.Background())
	require.NoError(t, err)

	// Characters: aloy has no artwork and is dropped.
	require.Len(t, got.Characters, 1)
	hutao := got.Characters[0]
	assert.Equal(t, "hutao", hutao.ID)
	assert.Equal(t, 5, hutao.Rarity)
	assert.Equal(t, catalog.ElementPyro, hutao.Element)
	assert.Equal(t, catalog.WeaponPolearm, hutao.Weapon)
	assert.Equal(t, "Ху Тао", hutao.NameRU)
	assert.Equal(t, "https://ui.test/UI_Hutao.webp", hutao.Image)

	// Weekly versus ascension is carved out of the BOSS category.
	require.Len(t, got.Bosses.Weekly, 1)
	assert.Equal(t, "azhdaha", got.Bosses.Weekly[0].ID)
	assert.Equal(t, catalog.GroupWeekly, got.Bosses.Weekly[0].Group)
	assert.Equal(t, "Аждаха", got.Bosses.Weekly[0].NameRU)

	require.Len(t, got.Bosses.Ascension, 1)
	assert.Equal(t, "andrius", got.Bosses.Ascension[0].ID)

	// Legends: one joined to the enemy index, one wiki-only; the entry
	// after ==Locations== never appears.
	require.Len(t, got.Bosses.LocalLegends, 2)
	byID := map[string]catalog.Item{}
	for _, legend := range got.Bosses.LocalLegends {
		byID[legend.ID] = legend
	}

	joined, ok := byID["local-legend-crabtsar"]
	require.True(t, ok)
	assert.Equal(t, "Краб-царь", joined.NameRU)
	assert.Equal(t, "https://ui.test/UI_CrabTsar.webp", joined.Image)

	wikiOnly, ok := byID["local-legend-mystery-legend"]
	require.True(t, ok)
	assert.Equal(t, "Mystery Legend", wikiOnly.NameRU, "no translation known")
	assert.Contains(t, wikiOnly.Image, "wiki.test")

	// The union pool is sorted by name and holds all four bosses.
	require.Len(t, got.Bosses.All, 4)
	for i := 1; i < len(got.Bosses.All); i++ {
		assert.LessOrEqual(t, got.Bosses.All[i-1].Name, got.Bosses.All[i].Name)
	}

	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), got.Meta.FetchedAt)
	assert.Equal(t, "theBowja/genshin-db", got.Meta.Source["characters"])
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()

	target, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	proxy := httputil.NewSingleHostReverseProxy(target)

	// The first two requests fail; retries must carry the fetch through.
	var calls atomic.Int64
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		proxy.ServeHTTP(w, r)
	}))
	defer flaky.Close()

	got, err := newClient(t, flaky.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got.Characters)
}

func TestFetchSurfacesUnavailable(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	_, err := newClient(t, down.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	server := fakeUpstream(t)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, server.URL).Fetch(ctx)
	require.Error(t, err)
}
