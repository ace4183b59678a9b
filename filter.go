package showcase

import (
	"sort"
	"strings"
	"time"
)

// Filter returns the items matching every criterion in f, preserving their
// relative order. An empty query, the "all" type, and an empty tag selection
// each match everything, so the zero-criteria filter is the identity.
func Filter(items []ContentItem, f SearchFilters) []ContentItem {
	matched := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if !matchesType(item, f.Type) {
			continue
		}
		if !matchesQuery(item, f.Query) {
			continue
		}
		if !matchesTags(item, f.Tags) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesType(item ContentItem, t ContentType) bool {
	if t == "" || t == TypeAll {
		return true
	}
	return item.ItemType() == t
}

// matchesQuery does a case-insensitive substring search over a haystack
// built from the item's title, excerpt/description, author (blogs only),
// and tags/tech stack, joined with spaces.
func matchesQuery(item ContentItem, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(searchText(item)), strings.ToLower(query))
}

func searchText(item ContentItem) string {
	var parts []string
	switch v := item.(type) {
	case BlogPost:
		parts = append(parts, v.Title, v.Excerpt, v.Author)
		parts = append(parts, v.Tags...)
	case Project:
		parts = append(parts, v.Title, v.Description, "")
		parts = append(parts, v.TechStack...)
	}
	return strings.Join(parts, " ")
}

// matchesTags is an inclusive OR across the selected tags: the item matches
// if any selected tag is a case-insensitive substring of any of the item's
// own tags or tech stack entries.
func matchesTags(item ContentItem, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	itemTags := tagsOf(item)
	for _, sel := range selected {
		lowered := strings.ToLower(sel)
		for _, tag := range itemTags {
			if strings.Contains(strings.ToLower(tag), lowered) {
				return true
			}
		}
	}
	return false
}

func tagsOf(item ContentItem) []string {
	switch v := item.(type) {
	case BlogPost:
		return v.Tags
	case Project:
		return v.TechStack
	}
	return nil
}

// SortByDateDesc returns a copy of items sorted newest first by published
// (blogs) or completed (projects) date. The sort is stable, so items with
// equal dates keep their collection order.
func SortByDateDesc(items []ContentItem) []ContentItem {
	sorted := make([]ContentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return itemDate(sorted[i]).After(itemDate(sorted[j]))
	})
	return sorted
}

func itemDate(item ContentItem) time.Time {
	var date string
	switch v := item.(type) {
	case BlogPost:
		date = v.PublishedAt
	case Project:
		date = v.CompletedAt
	}
	// Unparseable dates sort last rather than failing the request.
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}
