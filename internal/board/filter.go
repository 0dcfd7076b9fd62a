package board

import "strings"

// FacetAll disables the subboard facet filter.
const FacetAll = "ALL"

// Filter derives the visible subset of a board's posts. Both filters
// apply conjunctively: the facet must equal the post's batch (unless
// the ALL sentinel, or empty, disables it) and the search text must
// appear case-insensitively in the title or the content. Order is
// preserved.
func Filter(posts []Post, facet, search string) []Post {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if facet != "" && facet != FacetAll && p.Batch != facet {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Content), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
