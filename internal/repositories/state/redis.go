package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
	redisclient "github.com/genroll/roulette-api/internal/redis"
)

const (
	// Key pattern: roulette:{profile_id}:{slice}
	stateKeyPrefix = "roulette:"

	// Profiles persist for a year from the last write
	defaultTTL = 365 * 24 * time.Hour

	errProfileIDEmpty = "profile ID cannot be empty"
)

// Slice names double as key suffixes
const (
	sliceSettings         = "settings"
	sliceUI               = "ui"
	sliceCharacterFilters = "characterFilters"
	sliceBossFilters      = "bossFilters"
	sliceSelectedIDs      = "selectedIds"
	sliceHistory          = "history"
	sliceHistoryFilters   = "historyFilters"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
	TTL         time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("id generator is required")
	}
	return nil
}

type redisRepository struct {
	client      redisclient.Client
	idGenerator idgen.Generator
	ttl         time.Duration
}

// NewRedisRepository creates a new Redis repository for profile state
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client:      cfg.Client,
		idGenerator: cfg.IDGenerator,
		ttl:         ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// LoadProfile retrieves every slice and runs each through the
// normalization codec. Missing and corrupt slices normalize to defaults;
// only a storage failure surfaces as an error.
func (r *redisRepository) LoadProfile(ctx context.Context, input LoadProfileInput) (*LoadProfileOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	slices := make(map[string][]byte, 7)
	for _, slice := range []string{
		sliceSettings, sliceUI, sliceCharacterFilters, sliceBossFilters,
		sliceSelectedIDs, sliceHistory, sliceHistoryFilters,
	} {
		data, err := r.client.Get(ctx, r.buildKey(input.ProfileID, slice)).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s from Redis", slice)
		}
		slices[slice] = data
	}

	settings := NormalizeSettings(slices[sliceSettings])
	state := &session.State{
		Settings:         settings,
		UI:               NormalizeUI(slices[sliceUI]),
		CharacterFilters: NormalizeCharacterFilters(slices[sliceCharacterFilters]),
		BossFilters:      NormalizeBossFilters(slices[sliceBossFilters]),
		SelectedIDs:      NormalizeSelectedIDs(slices[sliceSelectedIDs]),
		History:          NormalizeHistory(slices[sliceHistory], settings.HistoryLimit, r.idGenerator),
		HistoryFilters:   NormalizeHistoryFilters(slices[sliceHistoryFilters]),
	}

	return &LoadProfileOutput{State: state}, nil
}

// SaveSettings persists user preferences
func (r *redisRepository) SaveSettings(ctx context.Context, input SaveSettingsInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceSettings, input.Settings)
}

// SaveUI persists the active section and roll order
func (r *redisRepository) SaveUI(ctx context.Context, input SaveUIInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceUI, input.UI)
}

// SaveCharacterFilters persists the character pool filters
func (r *redisRepository) SaveCharacterFilters(ctx context.Context, input SaveCharacterFiltersInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceCharacterFilters, input.Filters)
}

// SaveBossFilters persists the boss pool filters
func (r *redisRepository) SaveBossFilters(ctx context.Context, input SaveBossFiltersInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceBossFilters, input.Filters)
}

// SaveSelectedIDs persists both stages' selections
func (r *redisRepository) SaveSelectedIDs(ctx context.Context, input SaveSelectedIDsInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceSelectedIDs, input.Selected)
}

// SaveHistory persists the roll history, dropping the oldest entries
// until the payload fits the storage budget.
func (r *redisRepository) SaveHistory(ctx context.Context, input SaveHistoryInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceHistory, CapHistory(input.History))
}

// SaveHistoryFilters persists the history view filters
func (r *redisRepository) SaveHistoryFilters(ctx context.Context, input SaveHistoryFiltersInput) error {
	return r.saveSlice(ctx, input.ProfileID, sliceHistoryFilters, input.Filters)
}

func (r *redisRepository) saveSlice(ctx context.Context, profileID, slice string, value any) error {
	if profileID == "" {
		return errors.InvalidArgument(errProfileIDEmpty)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", slice)
	}

	key := r.buildKey(profileID, slice)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s in Redis", slice)
	}
	return nil
}

// buildKey creates the Redis key for one state slice
func (r *redisRepository) buildKey(profileID, slice string) string {
	return fmt.Sprintf("%s%s:%s", stateKeyPrefix, profileID, slice)
}
