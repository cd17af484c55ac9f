package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genroll/roulette-api/internal/entities/catalog"
)

func TestMergePrefersRealTranslations(t *testing.T) {
	base := catalog.Item{
		ID:     "crabtsar",
		Name:   "Crab Tsar",
		NameRU: "Crab Tsar", // english copy, not a translation
		Image:  "https://cdn.test/a.webp",
	}
	candidate := catalog.Item{
		ID:     "crabtsar",
		NameRU: "Краб-царь",
		Image:  "https://cdn.test/b.webp",
	}

	merged := catalog.Merge(base, candidate)

	assert.Equal(t, "Crab Tsar", merged.Name)
	assert.Equal(t, "Краб-царь", merged.NameRU, "real translation beats an english copy")
	assert.Equal(t, "https://cdn.test/a.webp", merged.Image, "base image wins when present")
}

func TestMergeUnionsFallbacks(t *testing.T) {
	base := catalog.Item{
		ID:             "azhdaha",
		Name:           "Azhdaha",
		ImageFallbacks: []string{"https://cdn.test/1.png", "https://cdn.test/2.png"},
	}
	candidate := catalog.Item{
		ID:             "azhdaha",
		ImageFallbacks: []string{"https://cdn.test/2.png", "https://cdn.test/3.png"},
	}

	merged := catalog.Merge(base, candidate)

	assert.Equal(t, []string{
		"https://cdn.test/1.png",
		"https://cdn.test/2.png",
		"https://cdn.test/3.png",
	}, merged.ImageFallbacks)
}

func TestDedupeByIDKeepsInsertOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "b", Name: "Bravo"},
		{ID: "a", Name: "Alpha"},
		{ID: "b", NameRU: "Браво"},
		{Name: "no id, dropped"},
	}

	got := catalog.DedupeByID(items)

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "Браво", got[0].NameRU, "duplicate merged into first occurrence")
	assert.Equal(t, "a", got[1].ID)
}

func TestUniqueURLs(t *testing.T) {
	got := catalog.UniqueURLs([]string{"", "x", "y", "x"})
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestDisplayNameFallsBackToEnglish(t *testing.T) {
	item := catalog.Item{Name: "Hu Tao", NameRU: "Ху Тао"}

	assert.Equal(t, "Ху Тао", item.DisplayName(catalog.LangRU))
	assert.Equal(t, "Hu Tao", item.DisplayName(catalog.LangJA))
	assert.Equal(t, "Hu Tao", item.DisplayName(catalog.LangEN))
}
