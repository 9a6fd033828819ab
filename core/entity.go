package core

import (
	"sort"
	"strings"
)

// EntityCategory names one of the fixed entity categories used for
// non-semantic matching. The set is closed; scoring weights are keyed
// by category.
type EntityCategory string

const (
	CategoryOrganization   EntityCategory = "organizations"
	CategoryFaculty        EntityCategory = "faculties"
	CategoryDepartment     EntityCategory = "departments"
	CategoryProgram        EntityCategory = "programs"
	CategoryCourse         EntityCategory = "courses"
	CategoryInstitute      EntityCategory = "institutes"
	CategoryResearchCenter EntityCategory = "research_centers"
	CategoryDate           EntityCategory = "dates"
	CategoryLocation       EntityCategory = "locations"
	CategoryArticleNumber  EntityCategory = "article_numbers"
)

// Categories returns the closed category set in a stable order.
func Categories() []EntityCategory {
	return []EntityCategory{
		CategoryOrganization,
		CategoryFaculty,
		CategoryDepartment,
		CategoryProgram,
		CategoryCourse,
		CategoryInstitute,
		CategoryResearchCenter,
		CategoryDate,
		CategoryLocation,
		CategoryArticleNumber,
	}
}

// EntitySet maps each category to its extracted values. All categories
// are represented; empty ones carry no weight in scoring. Values within
// a category are unique.
type EntitySet map[EntityCategory][]string

// NewEntitySet returns an EntitySet with every category present and empty.
func NewEntitySet() EntitySet {
	s := make(EntitySet, len(Categories()))
	for _, c := range Categories() {
		s[c] = []string{}
	}
	return s
}

// Add records a value under the category, ignoring duplicates.
// Duplicate detection is case-insensitive.
func (s EntitySet) Add(category EntityCategory, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	folded := strings.ToLower(value)
	for _, existing := range s[category] {
		if strings.ToLower(existing) == folded {
			return
		}
	}
	s[category] = append(s[category], value)
}

// IsEmpty reports whether no category holds any value.
func (s EntitySet) IsEmpty() bool {
	for _, values := range s {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Fold returns the category's values lowercased as a set.
func (s EntitySet) Fold(category EntityCategory) map[string]struct{} {
	values := s[category]
	folded := make(map[string]struct{}, len(values))
	for _, v := range values {
		folded[strings.ToLower(v)] = struct{}{}
	}
	return folded
}

// Sorted returns the category's values in sorted order.
// Useful for deterministic output in logs and tests.
func (s EntitySet) Sorted(category EntityCategory) []string {
	values := append([]string(nil), s[category]...)
	sort.Strings(values)
	return values
}
