package catalog

// pickLocalizedName prefers a real translation over a copy of the English
// name, then falls back to whatever is available.
func pickLocalizedName(left, right, englishName string) string {
	if left != "" && left != englishName {
		return left
	}
	if right != "" && right != englishName {
		return right
	}
	if left != "" {
		return left
	}
	if right != "" {
		return right
	}
	return englishName
}

// UniqueURLs drops empty entries and duplicates, preserving order
func UniqueURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// Merge combines two records sharing an id. Later non-empty fields win,
// fallback URL lists are unioned in order with duplicates removed.
func Merge(base, candidate Item) Item {
	merged := candidate
	merged.ID = base.ID
	if merged.Slug == "" {
		merged.Slug = base.Slug
	}

	name := base.Name
	if name == "" {
		name = candidate.Name
	}
	merged.Name = name
	merged.NameRU = pickLocalizedName(base.NameRU, candidate.NameRU, name)
	merged.NameZH = pickLocalizedName(base.NameZH, candidate.NameZH, name)
	merged.NameJA = pickLocalizedName(base.NameJA, candidate.NameJA, name)
	merged.NameKO = pickLocalizedName(base.NameKO, candidate.NameKO, name)

	if merged.Group == "" {
		merged.Group = base.Group
	}
	if merged.Rarity == 0 {
		merged.Rarity = base.Rarity
	}
	if merged.Element == "" {
		merged.Element = base.Element
	}
	if merged.Weapon == "" {
		merged.Weapon = base.Weapon
	}

	merged.Image = firstNonEmpty(base.Image, candidate.Image)
	merged.Splash = firstNonEmpty(base.Splash, candidate.Splash, base.Image, candidate.Image)
	merged.ImageFallbacks = UniqueURLs(append(append([]string{}, base.ImageFallbacks...), candidate.ImageFallbacks...))
	merged.SplashFallbacks = UniqueURLs(append(append([]string{}, base.SplashFallbacks...), candidate.SplashFallbacks...))

	return merged
}

// DedupeByID merges records sharing an id, keeping first-seen order.
// Records without an id are dropped.
func DedupeByID(items []Item) []Item {
	order := make([]string, 0, len(items))
	byID := make(map[string]Item, len(items))

	for _, item := range items {
		if item.ID == "" {
			continue
		}
		existing, ok := byID[item.ID]
		if !ok {
			byID[item.ID] = item
			order = append(order, item.ID)
			continue
		}
		byID[item.ID] = Merge(existing, item)
	}

	out := make([]Item, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
