// Package ledger records roll outcomes. Entries are denormalized at
// append time so history stays readable after catalog changes, newest
// first, capped at the profile's history limit.
package ledger

import (
	"time"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/pkg/clock"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
)

// StageAll matches every stage in a history filter
const StageAll = "all"

// Config holds the dependencies for a ledger
type Config struct {
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Limit caps the entry count. Zero falls back to the default
	// history limit.
	Limit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Limit < 0 {
		vb.Field("Limit", "must not be negative")
	}
	return vb.Build()
}

// Ledger is one profile's roll history. Not safe for concurrent use;
// the orchestrator serializes access.
type Ledger struct {
	clock       clock.Clock
	idGenerator idgen.Generator

	limit   int
	entries []session.HistoryEntry
}

// New creates an empty ledger
func New(cfg *Config) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limit := cfg.Limit
	if limit == 0 {
		limit = session.DefaultSettings().HistoryLimit
	}

	return &Ledger{
		clock:       cfg.Clock,
		idGenerator: cfg.IDGenerator,
		limit:       limit,
	}, nil
}

// Load replaces the ledger contents with persisted entries, truncating
// to the current limit.
func (l *Ledger) Load(entries []session.HistoryEntry) {
	l.entries = append([]session.HistoryEntry(nil), entries...)
	l.truncate()
}

// Append records a roll outcome at the head of the history and returns
// the stored entry. The oldest entries fall off past the limit.
func (l *Ledger) Append(stage catalog.Stage, item *catalog.Item) session.HistoryEntry {
	entry := session.HistoryEntry{
		ID:         l.idGenerator.Generate(),
		Stage:      string(stage),
		ItemID:     item.ID,
		ItemName:   item.Name,
		ItemNameRU: item.NameRU,
		Rarity:     item.Rarity,
		Group:      item.Group,
		Timestamp:  l.clock.Now().UTC().Format(time.RFC3339),
	}

	l.entries = append([]session.HistoryEntry{entry}, l.entries...)
	l.truncate()
	return entry
}

// Entries returns a copy of the full history, newest first
func (l *Ledger) Entries() []session.HistoryEntry {
	return append([]session.HistoryEntry(nil), l.entries...)
}

// Len returns the number of recorded entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Limit returns the current entry cap
func (l *Ledger) Limit() int {
	return l.limit
}

// SetLimit changes the entry cap and re-truncates immediately, so
// lowering the limit drops the oldest entries right away.
func (l *Ledger) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	l.limit = limit
	l.truncate()
}

// DeleteOne removes the entry with the given id. It reports whether an
// entry was removed.
func (l *Ledger) DeleteOne(id string) bool {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteMatching removes every entry the filter matches and returns the
// number removed.
func (l *Ledger) DeleteMatching(f *session.HistoryFilters) int {
	kept := l.entries[:0]
	removed := 0
	for i := range l.entries {
		if matches(&l.entries[i], f) {
			removed++
			continue
		}
		kept = append(kept, l.entries[i])
	}
	l.entries = kept
	return removed
}

// Clear drops every entry
func (l *Ledger) Clear() {
	l.entries = nil
}

// Filter returns the entries the filter matches, newest first, without
// mutating the ledger.
func (l *Ledger) Filter(f *session.HistoryFilters) []session.HistoryEntry {
	out := make([]session.HistoryEntry, 0, len(l.entries))
	for i := range l.entries {
		if matches(&l.entries[i], f) {
			out = append(out, l.entries[i])
		}
	}
	return out
}

func (l *Ledger) truncate() {
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
}

// matches applies the stage facet and the inclusive day-granular date
// range. Entries whose timestamps do not parse are excluded whenever a
// date bound is active.
func matches(e *session.HistoryEntry, f *session.HistoryFilters) bool {
	if f == nil {
		return true
	}

	if f.Stage != "" && f.Stage != StageAll && e.Stage != f.Stage {
		return false
	}

	from, hasFrom := parseDay(f.From)
	to, hasTo := parseDay(f.To)
	if !hasFrom && !hasTo {
		return true
	}

	ts, ok := e.Time()
	if !ok {
		return false
	}
	ts = ts.UTC()

	if hasFrom && ts.Before(from) {
		return false
	}
	if hasTo && ts.After(to.Add(24*time.Hour-time.Millisecond)) {
		return false
	}
	return true
}

// parseDay parses a YYYY-MM-DD bound to the UTC start of that day
func parseDay(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
