package catalogsource

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/genroll/roulette-api/internal/entities/catalog"
)

const localLegendPage = "Local Legend"

// localLegendNames carries hand-maintained translations for legends the
// enemy index does not know about.
var localLegendNames = map[string]map[catalog.Language]string{
	"Battlegoat and Ironclaw": {
		catalog.LangRU: "Боевой козёл и Железный Коготь",
		catalog.LangZH: "战斗山羊与铁爪",
		catalog.LangJA: "バトルゴートとアイアンクロー",
		catalog.LangKO: "배틀고트와 아이언클로",
	},
	"Cocijo": {
		catalog.LangRU: "Косихо",
		catalog.LangZH: "科西霍",
		catalog.LangJA: "コシホ",
		catalog.LangKO: "코시호",
	},
	"Crab Tsar": {
		catalog.LangRU: "Краб-царь",
		catalog.LangZH: "蟹王",
		catalog.LangJA: "クラブツァーリ",
		catalog.LangKO: "크랩 차르",
	},
	"He Never Dies": {
		catalog.LangRU: "Он никогда не умирает",
		catalog.LangZH: "他永不死去",
		catalog.LangJA: "彼は決して死なない",
		catalog.LangKO: "그는 결코 죽지 않는다",
	},
	"Hexadecatonic Mandragora": {
		catalog.LangRU: "Гексадекатоническая Мандрагора",
		catalog.LangZH: "十六音曼德拉草",
		catalog.LangJA: "十六音マンドラゴラ",
		catalog.LangKO: "헥사데카토닉 맨드라고라",
	},
	"Hiljetta": {
		catalog.LangRU: "Хильетта",
		catalog.LangZH: "希尔耶塔",
		catalog.LangJA: "ヒルイェッタ",
		catalog.LangKO: "힐예타",
	},
	"Liam": {
		catalog.LangRU: "Лиам",
		catalog.LangZH: "利亚姆",
		catalog.LangJA: "リアム",
		catalog.LangKO: "리암",
	},
	"Rocky Avildsen": {
		catalog.LangRU: "Рокки Авильдсен",
		catalog.LangZH: "洛奇·阿维尔德森",
		catalog.LangJA: "ロッキー・アヴィルドセン",
		catalog.LangKO: "로키 아빌드센",
	},
	"The Peak": {
		catalog.LangRU: "Пик",
		catalog.LangZH: "巅峰",
		catalog.LangJA: "ピーク",
		catalog.LangKO: "더 피크",
	},
	"The Homesick Lone Wolf": {
		catalog.LangRU: "Тоскующий одинокий волк",
		catalog.LangZH: "思乡孤狼",
		catalog.LangJA: "望郷の一匹狼",
		catalog.LangKO: "향수병에 걸린 외로운 늑대",
	},
	"The Last Survivor of Tenochtzitoc": {
		catalog.LangRU: "Последний выживший из Теночцитока",
		catalog.LangZH: "特诺奇兹托克的最后幸存者",
		catalog.LangJA: "テノチツトク最後の生存者",
		catalog.LangKO: "테노치츠토크의 마지막 생존자",
	},
	"Sigurd": {
		catalog.LangRU: "Сигурд",
		catalog.LangZH: "西格德",
		catalog.LangJA: "シグルド",
		catalog.LangKO: "시구르드",
	},
}

var (
	wikiCommentPattern = regexp.MustCompile(`<!--.*?-->`)
	wikiBreakPattern   = regexp.MustCompile(`(?i)<br\s*/?>`)
	wikiTagPattern     = regexp.MustCompile(`<[^>]*>`)
	wikiLegendSuffix   = regexp.MustCompile(`(?i)\(local legend\)`)
	spacesPattern      = regexp.MustCompile(`\s+`)
	nonKeyPattern      = regexp.MustCompile(`[^a-z0-9]`)
	nonSlugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
	enemyLinePrefix    = regexp.MustCompile(`^\*\s*\{\{Enemy\|`)
)

// cleanWikiText strips markup artifacts from a wikitext fragment
func cleanWikiText(value string) string {
	v := wikiCommentPattern.ReplaceAllString(value, "")
	v = strings.ReplaceAll(v, "[[", "")
	v = strings.ReplaceAll(v, "]]", "")
	v = wikiBreakPattern.ReplaceAllString(v, " ")
	v = wikiTagPattern.ReplaceAllString(v, "")
	v = strings.ReplaceAll(v, "&mdash;", "-")
	v = strings.ReplaceAll(v, "_", " ")
	v = wikiLegendSuffix.ReplaceAllString(v, "")
	v = strings.Trim(v, `"'`)
	return strings.TrimSpace(spacesPattern.ReplaceAllString(v, " "))
}

// keyify reduces a name to the lowercase alphanumeric key the enemy
// index uses as ids.
func keyify(value string) string {
	v := strings.ToLower(value)
	v = wikiLegendSuffix.ReplaceAllString(v, "")
	return nonKeyPattern.ReplaceAllString(v, "")
}

// toSlug builds a hyphenated identifier from a display name
func toSlug(value string) string {
	v := nonSlugPattern.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(v, "-")
}

// legendRef is one parsed {{Enemy|...}} line off the Local Legend page
type legendRef struct {
	name   string
	source string
	link   string
}

// parseLegendLine unwraps an {{Enemy|...}} template. The display name
// comes from the text= parameter when present, with epithets after a
// dash stripped.
func parseLegendLine(line string) legendRef {
	raw := enemyLinePrefix.ReplaceAllString(strings.TrimSpace(line), "")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "}}")

	parts := strings.Split(raw, "|")
	firstArg := cleanWikiText(parts[0])

	var textArg, linkArg string
	for _, part := range parts[1:] {
		value := strings.TrimSpace(part)
		if strings.HasPrefix(value, "text=") {
			textArg = cleanWikiText(strings.TrimPrefix(value, "text="))
		}
		if strings.HasPrefix(value, "link=") {
			linkArg = cleanWikiText(strings.TrimPrefix(value, "link="))
		}
	}

	displayName := textArg
	if displayName == "" {
		displayName = firstArg
	}
	displayName = strings.TrimSpace(strings.ReplaceAll(displayName, `"`, ""))
	if idx := strings.Index(displayName, "—"); idx >= 0 {
		displayName = strings.TrimSpace(displayName[:idx])
	}
	if idx := strings.Index(displayName, " - "); idx >= 0 {
		displayName = strings.TrimSpace(displayName[:idx])
	}
	if strings.HasPrefix(displayName, "Polychrome Tri-Stars:") {
		displayName = "Polychrome Tri-Stars"
	}

	return legendRef{
		name:   cleanWikiText(displayName),
		source: firstArg,
		link:   linkArg,
	}
}

// parseLegendList extracts the unique legend refs from the page
// wikitext, stopping at the Locations section.
func parseLegendList(wikitext string) []legendRef {
	listSection := wikitext
	if idx := strings.Index(wikitext, "==Locations=="); idx >= 0 {
		listSection = wikitext[:idx]
	}

	seen := map[string]struct{}{}
	var legends []legendRef
	for _, line := range strings.Split(listSection, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "* {{Enemy|") {
			continue
		}
		legend := parseLegendLine(line)
		if legend.name == "" {
			continue
		}
		key := strings.ToLower(legend.name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		legends = append(legends, legend)
	}
	return legends
}

// legendName resolves one locale for a legend: the enemy index first,
// then the hand-maintained table, then the English name.
func legendName(names map[string]string, enemyID, english string, lang catalog.Language) string {
	if enemyID != "" {
		if name, ok := names[enemyID]; ok && name != "" {
			return name
		}
	}
	if translated, ok := localLegendNames[english][lang]; ok && translated != "" {
		return translated
	}
	return english
}

type fandomParseResponse struct {
	Parse struct {
		Wikitext map[string]string `json:"wikitext"`
	} `json:"parse"`
}

// mapLocalLegends pulls the Local Legend wiki page and maps each listed
// legend to a catalog item, joining to the enemy index when the legend's
// key matches a known enemy id.
func (c *httpClient) mapLocalLegends(
	ctx context.Context,
	names map[catalog.Language]map[string]string,
	images map[string]imageEntry,
) ([]catalog.Item, error) {
	parseURL := fmt.Sprintf(
		"%s?action=parse&page=%s&prop=wikitext&format=json&origin=*",
		c.fandomAPI, url.QueryEscape(localLegendPage),
	)
	var parsed fandomParseResponse
	if err := c.fetchJSON(ctx, parseURL, &parsed); err != nil {
		return nil, err
	}

	legends := parseLegendList(parsed.Parse.Wikitext["*"])

	items := make([]catalog.Item, 0, len(legends))
	for _, legend := range legends {
		enemyID := ""
		for _, candidate := range []string{legend.link, legend.source, legend.name} {
			key := keyify(cleanWikiText(candidate))
			if key == "" {
				continue
			}
			if _, known := names[catalog.LangEN][key]; known {
				enemyID = key
				break
			}
		}

		wikiImage := ""
		for _, candidate := range catalog.UniqueURLs([]string{legend.link, legend.source, legend.name}) {
			thumb, err := c.fetchFandomThumb(ctx, candidate)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				continue
			}
			if thumb != "" {
				wikiImage = thumb
				break
			}
		}

		item := catalog.Item{
			Group:  catalog.GroupLocalLegend,
			Name:   legend.name,
			NameRU: legendName(names[catalog.LangRU], enemyID, legend.name, catalog.LangRU),
			NameZH: legendName(names[catalog.LangZH], enemyID, legend.name, catalog.LangZH),
			NameJA: legendName(names[catalog.LangJA], enemyID, legend.name, catalog.LangJA),
			NameKO: legendName(names[catalog.LangKO], enemyID, legend.name, catalog.LangKO),
		}

		if enemyID != "" {
			entry := images[enemyID]
			imageCandidates := c.enemyImageCandidates(entry)
			splashCandidates := c.enemySplashCandidates(entry)

			item.ID = "local-legend-" + enemyID
			item.Slug = enemyID
			item.Image = firstOr(imageCandidates, wikiImage)
			item.Splash = firstOr(splashCandidates, item.Image)
			fallbacks := imageCandidates
			if len(fallbacks) > 0 {
				fallbacks = fallbacks[1:]
			}
			if wikiImage != "" && wikiImage != item.Image {
				fallbacks = append(fallbacks, wikiImage)
			}
			item.ImageFallbacks = catalog.UniqueURLs(fallbacks)
			if len(splashCandidates) > 1 {
				item.SplashFallbacks = splashCandidates[1:]
			}
		} else {
			item.ID = "local-legend-" + toSlug(legend.name)
			item.Slug = toSlug(legend.name)
			item.Image = wikiImage
			item.Splash = wikiImage
		}

		if item.Image == "" {
			continue
		}
		items = append(items, item)
	}

	items = catalog.DedupeByID(items)
	catalog.SortByName(items)
	return items, nil
}
