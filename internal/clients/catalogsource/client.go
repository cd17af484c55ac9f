// Package catalogsource fetches the character and boss catalog from the
// genshin-db dataset, with boss artwork fallbacks and the Local Legend
// roster resolved through the Fandom wiki API.
package catalogsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_client.go -package=catalogsourcemock github.com/genroll/roulette-api/internal/clients/catalogsource Client

const (
	defaultDataBaseURL  = "https://raw.githubusercontent.com/theBowja/genshin-db/main/src/data"
	defaultFandomAPIURL = "https://genshin-impact.fandom.com/api.php"
	defaultHakushUIBase = "https://api.hakush.in/gi/UI"

	defaultRetries    = 3
	defaultRetryDelay = 180 * time.Millisecond

	weeklyCategory = "Enemies of Note"
	bossCategory   = "BOSS"
)

// dataset locale path segments, keyed by catalog language
var localePaths = map[catalog.Language]string{
	catalog.LangEN: "English",
	catalog.LangRU: "Russian",
	catalog.LangZH: "ChineseSimplified",
	catalog.LangJA: "Japanese",
	catalog.LangKO: "Korean",
}

// Client fetches one complete catalog snapshot
type Client interface {
	// Fetch resolves the full catalog. Each call performs a fresh fetch;
	// cancel via ctx.
	Fetch(ctx context.Context) (*catalog.Catalog, error)
}

// Config holds the configuration for the HTTP client
type Config struct {
	HTTPClient *http.Client
	Clock      clock.Clock

	// Endpoint overrides, used by tests. Empty values take the real
	// upstream defaults.
	DataBaseURL  string
	FandomAPIURL string
	HakushUIBase string

	Retries    int
	RetryDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type httpClient struct {
	http       *http.Client
	clock      clock.Clock
	dataBase   string
	fandomAPI  string
	hakushBase string
	retries    int
	retryDelay time.Duration
}

// New creates an HTTP catalog source client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &httpClient{
		http:       cfg.HTTPClient,
		clock:      cfg.Clock,
		dataBase:   cfg.DataBaseURL,
		fandomAPI:  cfg.FandomAPIURL,
		hakushBase: cfg.HakushUIBase,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.dataBase == "" {
		c.dataBase = defaultDataBaseURL
	}
	if c.fandomAPI == "" {
		c.fandomAPI = defaultFandomAPIURL
	}
	if c.hakushBase == "" {
		c.hakushBase = defaultHakushUIBase
	}
	if c.retries <= 0 {
		c.retries = defaultRetries
	}
	if c.retryDelay <= 0 {
		c.retryDelay = defaultRetryDelay
	}
	return c, nil
}

// Ensure httpClient implements Client
var _ Client = (*httpClient)(nil)

// Fetch pulls the five-locale character and enemy indexes plus image
// maps, maps them to catalog items, and resolves the Local Legend page.
func (c *httpClient) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	characterNames := make(map[catalog.Language]map[string]string, len(localePaths))
	enemyNames := make(map[catalog.Language]map[string]string, len(localePaths))

	var characterIndexEN, enemyIndexEN indexData
	for lang, path := range localePaths {
		var chars, enemies indexData
		if err := c.fetchJSON(ctx, fmt.Sprintf("%s/index/%s/characters.json", c.dataBase, path), &chars); err != nil {
			return nil, err
		}
		if err := c.fetchJSON(ctx, fmt.Sprintf("%s/index/%s/enemies.json", c.dataBase, path), &enemies); err != nil {
			return nil, err
		}
		characterNames[lang] = chars.NameMap
		enemyNames[lang] = enemies.NameMap
		if lang == catalog.LangEN {
			characterIndexEN = chars
			enemyIndexEN = enemies
		}
	}

	var characterImages, enemyImages map[string]imageEntry
	if err := c.fetchJSON(ctx, c.dataBase+"/image/characters.json", &characterImages); err != nil {
		return nil, err
	}
	if err := c.fetchJSON(ctx, c.dataBase+"/image/enemies.json", &enemyImages); err != nil {
		return nil, err
	}

	characters := c.mapCharacters(characterNames, characterImages, &characterIndexEN)

	weeklyIDs := enemyIndexEN.Categories[weeklyCategory]
	weeklySet := make(map[string]struct{}, len(weeklyIDs))
	for _, id := range weeklyIDs {
		weeklySet[id] = struct{}{}
	}
	ascensionIDs := make([]string, 0, len(enemyIndexEN.Categories[bossCategory]))
	for _, id := range enemyIndexEN.Categories[bossCategory] {
		if _, weekly := weeklySet[id]; !weekly {
			ascensionIDs = append(ascensionIDs, id)
		}
	}

	weekly, err := c.mapBossList(ctx, weeklyIDs, enemyNames, enemyImages, catalog.GroupWeekly)
	if err != nil {
		return nil, err
	}
	ascension, err := c.mapBossList(ctx, ascensionIDs, enemyNames, enemyImages, catalog.GroupAscension)
	if err != nil {
		return nil, err
	}
	legends, err := c.mapLocalLegends(ctx, enemyNames, enemyImages)
	if err != nil {
		return nil, err
	}

	all := append(append(append([]catalog.Item{}, weekly...), ascension...), legends...)
	all = catalog.DedupeByID(all)
	catalog.SortByName(all)

	snapshot := &catalog.Catalog{
		Characters: characters,
		Bosses: catalog.BossSet{
			All:          all,
			Weekly:       weekly,
			Ascension:    ascension,
			LocalLegends: legends,
		},
		Meta: catalog.Meta{
			FetchedAt: c.clock.Now().UTC(),
			Source: map[string]string{
				"characters":   "theBowja/genshin-db",
				"enemies":      "theBowja/genshin-db",
				"localLegends": "genshin-impact.fandom.com API",
			},
		},
	}

	slog.Info("catalog fetched",
		"characters", len(snapshot.Characters),
		"bosses", len(snapshot.Bosses.All),
		"local_legends", len(snapshot.Bosses.LocalLegends),
	)

	return snapshot.Normalize(), nil
}

// fetchJSON retrieves and decodes a JSON document with bounded retries
// and a linearly growing delay between attempts.
func (c *httpClient) fetchJSON(ctx context.Context, url string, target any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		lastErr = c.fetchOnce(ctx, url, target)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "fetch canceled")
		}
		if attempt < c.retries {
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "fetch canceled")
			}
		}
	}
	return errors.WrapWithCode(lastErr, errors.CodeUnavailable, "catalog source unavailable")
}

func (c *httpClient) fetchOnce(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return fmt.Errorf("empty response from %s", url)
	}
	return json.Unmarshal(body, target)
}
