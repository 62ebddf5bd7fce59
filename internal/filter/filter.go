// Package filter implements the visibility predicate shared by every content
// section: a free-text query combined with tag and category selections.
package filter

import "strings"

// Record is anything that can be searched and tagged.
type Record interface {
	SearchFields() []string
	TagList() []string
}

// Categorized records additionally carry a single category, filtered
// independently of tags.
type Categorized interface {
	Record
	CategoryName() string
}

// Criteria is the full set of filter inputs for one section.
type Criteria struct {
	Query      string
	Tags       Selection
	Categories Selection
}

// Match reports whether r is visible under c. The query, tag and category
// dimensions are combined with AND; within the tag and category dimensions a
// single hit is enough.
func Match(r Record, c Criteria) bool {
	if !matchesQuery(r, c.Query) {
		return false
	}
	if !c.Tags.Empty() && !c.Tags.ContainsAny(r.TagList()) {
		return false
	}
	if cr, ok := r.(Categorized); ok && !c.Categories.Empty() {
		if !c.Categories.Contains(cr.CategoryName()) {
			return false
		}
	}
	return true
}

func matchesQuery(r Record, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range r.SearchFields() {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, t := range r.TagList() {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Apply returns the records visible under c, in their original order. The
// input slice is not modified.
func Apply[R Record](records []R, c Criteria) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if Match(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Tags returns the union of the records' tags, de-duplicated, in first-seen
// order.
func Tags[R Record](records []R) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, t := range r.TagList() {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// Categories returns the distinct categories of the records in first-seen
// order.
func Categories[R Categorized](records []R) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range records {
		c := r.CategoryName()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
