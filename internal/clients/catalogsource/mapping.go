package catalogsource

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/genroll/roulette-api/internal/entities/catalog"
)

// indexData is one locale's slice of the genshin-db index
type indexData struct {
	NameMap    map[string]string   `json:"namemap"`
	Categories map[string][]string `json:"categories"`
}

// imageEntry carries the artwork references genshin-db knows for one id
type imageEntry struct {
	FilenameIcon              string `json:"filename_icon"`
	FilenameIconCard          string `json:"filename_iconCard"`
	FilenameGachaSplash       string `json:"filename_gachaSplash"`
	FilenameSideIcon          string `json:"filename_sideIcon"`
	FilenameIconBig           string `json:"filename_iconBig"`
	FilenameInvestigationIcon string `json:"filename_investigationIcon"`
	Card                      string `json:"card"`
	Image                     string `json:"image"`
	Portrait                  string `json:"portrait"`
	Cover1                    string `json:"cover1"`
	Cover2                    string `json:"cover2"`
	MihoyoIcon                string `json:"mihoyo_icon"`
	MihoyoSideIcon            string `json:"mihoyo_sideIcon"`
}

// characterMeta is derived from the English index's category keys
type characterMeta struct {
	rarity  int
	element string
	weapon  string
}

func (c *httpClient) hakushWebp(filename string) string {
	if filename == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.webp", c.hakushBase, filename)
}

func (c *httpClient) hakushPng(filename string) string {
	if filename == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", c.hakushBase, filename)
}

// characterImageCandidates orders artwork URLs best-first. Hakush webp
// renders sharpest, then png, then whatever genshin-db carries inline.
func (c *httpClient) characterImageCandidates(entry imageEntry) []string {
	return catalog.UniqueURLs([]string{
		c.hakushWebp(entry.FilenameIcon),
		c.hakushWebp(entry.FilenameIconCard),
		c.hakushPng(entry.FilenameIcon),
		c.hakushPng(entry.FilenameIconCard),
		entry.Card,
		entry.Image,
		entry.Portrait,
		entry.MihoyoIcon,
	})
}

func (c *httpClient) characterSplashCandidates(entry imageEntry) []string {
	candidates := []string{
		c.hakushWebp(entry.FilenameGachaSplash),
		c.hakushPng(entry.FilenameGachaSplash),
		c.hakushWebp(entry.FilenameSideIcon),
		c.hakushPng(entry.FilenameSideIcon),
		c.hakushWebp(entry.FilenameIcon),
		c.hakushPng(entry.FilenameIcon),
		entry.Cover1,
		entry.Cover2,
		entry.Image,
		entry.Portrait,
		entry.MihoyoSideIcon,
	}
	return catalog.UniqueURLs(append(candidates, c.characterImageCandidates(entry)...))
}

func (c *httpClient) enemyImageCandidates(entry imageEntry) []string {
	return catalog.UniqueURLs([]string{
		c.hakushWebp(entry.FilenameIcon),
		c.hakushWebp(entry.FilenameInvestigationIcon),
		c.hakushPng(entry.FilenameIcon),
		c.hakushPng(entry.FilenameInvestigationIcon),
	})
}

func (c *httpClient) enemySplashCandidates(entry imageEntry) []string {
	candidates := []string{
		c.hakushWebp(entry.FilenameIconBig),
		c.hakushPng(entry.FilenameIconBig),
		c.hakushWebp(entry.FilenameInvestigationIcon),
		c.hakushPng(entry.FilenameInvestigationIcon),
		c.hakushWebp(entry.FilenameIcon),
		c.hakushPng(entry.FilenameIcon),
	}
	return catalog.UniqueURLs(append(candidates, c.enemyImageCandidates(entry)...))
}

// extractCharacterMeta reads rarity, element, and weapon off the English
// index's category keys ("5", "ELEMENT_PYRO", "WEAPON_BOW", ...).
func extractCharacterMeta(index *indexData) map[string]characterMeta {
	metas := map[string]characterMeta{}
	for key, ids := range index.Categories {
		for _, id := range ids {
			meta, ok := metas[id]
			if !ok {
				meta = characterMeta{rarity: 4, element: catalog.ElementNone, weapon: catalog.WeaponSword}
			}
			switch {
			case key == "4":
				meta.rarity = 4
			case key == "5":
				meta.rarity = 5
			case strings.HasPrefix(key, "ELEMENT_"):
				meta.element = strings.TrimPrefix(key, "ELEMENT_")
			case strings.HasPrefix(key, "WEAPON_"):
				meta.weapon = key
			}
			metas[id] = meta
		}
	}
	return metas
}

// mapCharacters turns the locale name maps and image map into catalog
// items. Characters without any artwork are dropped; ordering is
// five-stars first, then by English name.
func (c *httpClient) mapCharacters(
	names map[catalog.Language]map[string]string,
	images map[string]imageEntry,
	indexEN *indexData,
) []catalog.Item {
	metas := extractCharacterMeta(indexEN)

	items := make([]catalog.Item, 0, len(names[catalog.LangEN]))
	for id, nameEN := range names[catalog.LangEN] {
		entry := images[id]
		imageCandidates := c.characterImageCandidates(entry)
		if len(imageCandidates) == 0 {
			continue
		}
		splashCandidates := c.characterSplashCandidates(entry)

		meta, ok := metas[id]
		if !ok {
			meta = characterMeta{rarity: 4, element: catalog.ElementNone, weapon: catalog.WeaponSword}
		}

		item := catalog.Item{
			ID:             id,
			Slug:           id,
			Name:           nameEN,
			NameRU:         nameOr(names[catalog.LangRU], id, nameEN),
			NameZH:         nameOr(names[catalog.LangZH], id, nameEN),
			NameJA:         nameOr(names[catalog.LangJA], id, nameEN),
			NameKO:         nameOr(names[catalog.LangKO], id, nameEN),
			Rarity:         meta.rarity,
			Element:        meta.element,
			Weapon:         meta.weapon,
			Image:          imageCandidates[0],
			ImageFallbacks: imageCandidates[1:],
			Splash:         firstOr(splashCandidates, imageCandidates[0]),
		}
		if len(splashCandidates) > 1 {
			item.SplashFallbacks = splashCandidates[1:]
		}
		items = append(items, item)
	}

	catalog.SortCharacters(items)
	return items
}

// mapBossList maps one category's enemy ids to catalog items. Ids with
// no artwork in the image map fall back to a Fandom thumbnail lookup;
// still-imageless entries are dropped.
func (c *httpClient) mapBossList(
	ctx context.Context,
	ids []string,
	names map[catalog.Language]map[string]string,
	images map[string]imageEntry,
	group string,
) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		entry := images[id]
		imageCandidates := c.enemyImageCandidates(entry)
		splashCandidates := c.enemySplashCandidates(entry)
		name := nameOr(names[catalog.LangEN], id, id)

		image := firstOr(imageCandidates, "")
		if image == "" {
			thumb, err := c.fetchFandomThumb(ctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				thumb = ""
			}
			image = thumb
		}
		if image == "" {
			continue
		}

		item := catalog.Item{
			ID:     id,
			Slug:   id,
			Group:  group,
			Name:   name,
			NameRU: nameOr(names[catalog.LangRU], id, name),
			NameZH: nameOr(names[catalog.LangZH], id, name),
			NameJA: nameOr(names[catalog.LangJA], id, name),
			NameKO: nameOr(names[catalog.LangKO], id, name),
			Image:  image,
			Splash: firstOr(splashCandidates, image),
		}
		if len(imageCandidates) > 1 {
			item.ImageFallbacks = imageCandidates[1:]
		}
		if len(splashCandidates) > 1 {
			item.SplashFallbacks = splashCandidates[1:]
		}
		items = append(items, item)
	}

	items = catalog.DedupeByID(items)
	catalog.SortByName(items)
	return items, nil
}

// fandomPage is the subset of a pageimages query result we read
type fandomPage struct {
	Title     string `json:"title"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

type fandomQueryResponse struct {
	Query struct {
		Pages map[string]fandomPage `json:"pages"`
	} `json:"query"`
}

// fetchFandomThumb resolves a page thumbnail by exact title first, then
// by search, preferring pages that are not achievements or change
// histories.
func (c *httpClient) fetchFandomThumb(ctx context.Context, title string) (string, error) {
	directURL := fmt.Sprintf(
		"%s?action=query&titles=%s&prop=pageimages&piprop=thumbnail&pithumbsize=1024&format=json&origin=*",
		c.fandomAPI, url.QueryEscape(title),
	)
	var direct fandomQueryResponse
	if err := c.fetchJSON(ctx, directURL, &direct); err != nil {
		return "", err
	}
	for _, page := range direct.Query.Pages {
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}

	searchURL := fmt.Sprintf(
		"%s?action=query&generator=search&gsrsearch=%s&gsrlimit=8&prop=pageimages&piprop=thumbnail&pithumbsize=1024&format=json&origin=*",
		c.fandomAPI, url.QueryEscape(title+" genshin impact enemy"),
	)
	var search fandomQueryResponse
	if err := c.fetchJSON(ctx, searchURL, &search); err != nil {
		return "", err
	}

	best := ""
	bestPenalty := -1
	for _, page := range search.Query.Pages {
		if page.Thumbnail == nil || page.Thumbnail.Source == "" {
			continue
		}
		penalty := 0
		lowered := strings.ToLower(page.Title)
		if strings.Contains(lowered, "(achievement)") {
			penalty++
		}
		if strings.Contains(lowered, "change history") {
			penalty++
		}
		if bestPenalty == -1 || penalty < bestPenalty {
			best = page.Thumbnail.Source
			bestPenalty = penalty
		}
	}
	return best, nil
}

func nameOr(names map[string]string, id, fallback string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fallback
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
