package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/ledger"
	"github.com/genroll/roulette-api/internal/pkg/clock"
	"github.com/genroll/roulette-api/internal/pkg/idgen"
)

type LedgerTestSuite struct {
	suite.Suite
	clock  *clock.Fixed
	ledger *ledger.Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	l, err := ledger.New(&ledger.Config{
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("hist"),
	})
	s.Require().NoError(err)
	s.ledger = l
}

func (s *LedgerTestSuite) appendBoss(name string) session.HistoryEntry {
	return s.ledger.Append(catalog.StageBosses, &catalog.Item{
		ID:     "boss-" + name,
		Name:   name,
		Group:  catalog.GroupWeekly,
		Rarity: 0,
	})
}

func (s *LedgerTestSuite) TestAppendDenormalizesAndPrepends() {
	item := &catalog.Item{
		ID:      "hutao",
		Name:    "Hu Tao",
		NameRU:  "Ху Тао",
		Rarity:  5,
		Element: catalog.ElementPyro,
	}

	entry := s.ledger.Append(catalog.StageCharacters, item)

	s.Equal("hist_1", entry.ID)
	s.Equal("characters", entry.Stage)
	s.Equal("hutao", entry.ItemID)
	s.Equal("Hu Tao", entry.ItemName)
	s.Equal("Ху Тао", entry.ItemNameRU)
	s.Equal(5, entry.Rarity)
	s.Equal("2026-08-30T12:00:00Z", entry.Timestamp)

	s.clock.Advance(time.Minute)
	s.appendBoss("Azhdaha")

	entries := s.ledger.Entries()
	s.Require().Len(entries, 2)
	s.Equal("Azhdaha", entries[0].ItemName, "newest entry first")
	s.Equal("Hu Tao", entries[1].ItemName)
}

func (s *LedgerTestSuite) TestAppendTruncatesAtLimit() {
	s.ledger.SetLimit(30)
	for i := 0; i < 35; i++ {
		s.clock.Advance(time.Second)
		s.appendBoss(fmt.Sprintf("Boss %d", i))
	}

	s.Equal(30, s.ledger.Len())
	s.Equal("Boss 34", s.ledger.Entries()[0].ItemName)
	s.Equal("Boss 5", s.ledger.Entries()[29].ItemName, "oldest entries fall off")
}

func (s *LedgerTestSuite) TestSetLimitRetruncatesImmediately() {
	for i := 0; i < 40; i++ {
		s.appendBoss(fmt.Sprintf("Boss %d", i))
	}
	s.Equal(40, s.ledger.Len())

	s.ledger.SetLimit(30)
	s.Equal(30, s.ledger.Len())
	s.Equal("Boss 39", s.ledger.Entries()[0].ItemName)
}

func (s *LedgerTestSuite) TestLoadAppliesLimit() {
	entries := make([]session.HistoryEntry, 70)
	for i := range entries {
		entries[i] = session.HistoryEntry{ID: fmt.Sprintf("e%d", i), Stage: string(catalog.StageBosses)}
	}

	s.ledger.Load(entries)

	s.Equal(60, s.ledger.Len(), "default limit applies on load")
	s.Equal("e0", s.ledger.Entries()[0].ID)
}

func (s *LedgerTestSuite) TestDeleteOne() {
	s.appendBoss("Azhdaha")
	s.appendBoss("Signora")

	s.True(s.ledger.DeleteOne("hist_1"))
	s.False(s.ledger.DeleteOne("hist_1"), "already removed")

	entries := s.ledger.Entries()
	s.Require().Len(entries, 1)
	s.Equal("Signora", entries[0].ItemName)
}

func (s *LedgerTestSuite) TestClear() {
	s.appendBoss("Azhdaha")
	s.ledger.Clear()
	s.Zero(s.ledger.Len())
}

func (s *LedgerTestSuite) TestFilterByStage() {
	s.ledger.Append(catalog.StageCharacters, &catalog.Item{ID: "hutao", Name: "Hu Tao"})
	s.appendBoss("Azhdaha")

	f := session.HistoryFilters{Stage: string(catalog.StageBosses)}
	got := s.ledger.Filter(&f)
	s.Require().Len(got, 1)
	s.Equal("Azhdaha", got[0].ItemName)

	f.Stage = ledger.StageAll
	s.Len(s.ledger.Filter(&f), 2)

	s.Len(s.ledger.Filter(nil), 2)
}

func (s *LedgerTestSuite) TestFilterDayBoundsAreInclusive() {
	s.clock.Set(time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC))
	s.appendBoss("Late on the 29th")

	s.clock.Set(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	s.appendBoss("Midnight on the 30th")

	s.clock.Set(time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC))
	s.appendBoss("Last second of the 30th")

	s.clock.Set(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	s.appendBoss("Midnight on the 31st")

	f := session.HistoryFilters{From: "2026-08-30", To: "2026-08-30", Stage: ledger.StageAll}
	got := s.ledger.Filter(&f)

	s.Require().Len(got, 2)
	s.Equal("Last second of the 30th", got[0].ItemName)
	s.Equal("Midnight on the 30th", got[1].ItemName)
}

func (s *LedgerTestSuite) TestFilterOpenEndedBounds() {
	s.clock.Set(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	s.appendBoss("Old")
	s.clock.Set(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	s.appendBoss("New")

	f := session.HistoryFilters{From: "2026-08-30"}
	got := s.ledger.Filter(&f)
	s.Require().Len(got, 1)
	s.Equal("New", got[0].ItemName)

	f = session.HistoryFilters{To: "2026-08-30"}
	got = s.ledger.Filter(&f)
	s.Require().Len(got, 1)
	s.Equal("Old", got[0].ItemName)
}

func (s *LedgerTestSuite) TestFilterExcludesUnparsableTimestamps() {
	s.ledger.Load([]session.HistoryEntry{
		{ID: "bad", Stage: string(catalog.StageBosses), Timestamp: "not-a-date"},
		{ID: "good", Stage: string(catalog.StageBosses), Timestamp: "2026-08-30T10:00:00Z"},
	})

	f := session.HistoryFilters{From: "2026-08-01", To: "2026-08-31"}
	got := s.ledger.Filter(&f)
	s.Require().Len(got, 1)
	s.Equal("good", got[0].ID)

	// Without date bounds the unparsable entry still shows.
	s.Len(s.ledger.Filter(&session.HistoryFilters{Stage: ledger.StageAll}), 2)
}

func (s *LedgerTestSuite) TestDeleteMatching() {
	s.ledger.Append(catalog.StageCharacters, &catalog.Item{ID: "hutao", Name: "Hu Tao"})
	s.appendBoss("Azhdaha")
	s.appendBoss("Signora")

	f := session.HistoryFilters{Stage: string(catalog.StageBosses)}
	removed := s.ledger.DeleteMatching(&f)

	s.Equal(2, removed)
	s.Require().Equal(1, s.ledger.Len())
	s.Equal("Hu Tao", s.ledger.Entries()[0].ItemName)
}

func (s *LedgerTestSuite) TestConfigValidation() {
	_, err := ledger.New(&ledger.Config{IDGenerator: idgen.NewSequential("")})
	s.Error(err)

	_, err = ledger.New(&ledger.Config{Clock: s.clock})
	s.Error(err)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
