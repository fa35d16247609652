package store

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// searchCutoff rejects matches whose normalized edit distance is worse
// than this; below it everything looks like a match.
const searchCutoff = 0.6

// Search filters the catalog by a fuzzy title/category match, best match
// first. An empty query returns the full catalog in display order.
func (s *Store) Search(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Catalog()
	}

	type scored struct {
		item Item
		rank float64
	}
	var hits []scored
	for _, it := range s.catalog {
		rank, ok := matchRank(q, it)
		if !ok {
			continue
		}
		hits = append(hits, scored{item: it, rank: rank})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// matchRank scores query against one item; lower is better. Substring
// hits rank ahead of fuzzy hits so exact titles surface first.
func matchRank(q string, it Item) (float64, bool) {
	title := strings.ToLower(it.Title)
	category := strings.ToLower(it.Category)

	if title == q {
		return 0, true
	}
	if strings.HasPrefix(title, q) {
		return 0.1, true
	}
	if strings.Contains(title, q) || strings.Contains(category, q) {
		return 0.2, true
	}

	dist := levenshtein.ComputeDistance(q, title)
	maxlen := len(title)
	if len(q) > maxlen {
		maxlen = len(q)
	}
	if maxlen == 0 {
		return 0, false
	}
	norm := float64(dist) / float64(maxlen)
	if norm >= searchCutoff {
		return 0, false
	}
	return 0.3 + norm, true
}
