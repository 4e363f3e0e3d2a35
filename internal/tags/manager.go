package tags

import (
	"fmt"
	"sort"
	"strings"
)

// Manager answers tag queries over the static catalog.
type Manager struct {
	known map[string]bool
}

// NewManager builds a Manager, verifying the catalog is consistent
// (every category tag appears in the full list, no duplicates).
func NewManager() (*Manager, error) {
	all := All()
	known := make(map[string]bool, len(all))
	for _, tag := range all {
		if known[tag] {
			return nil, fmt.Errorf("duplicate tag in catalog: %s", tag)
		}
		known[tag] = true
	}
	return &Manager{known: known}, nil
}

// Search returns tags matching the query: the whole category when the query
// names one, otherwise every tag containing the query as a substring.
func (m *Manager) Search(query string) []string {
	query = strings.ToLower(query)
	if tags, ok := ByCategory(query); ok {
		out := make([]string, len(tags))
		copy(out, tags)
		return out
	}
	var matches []string
	for _, tag := range All() {
		if strings.Contains(tag, query) {
			matches = append(matches, tag)
		}
	}
	return matches
}

// RecommendedFor returns the curated tag set for a component: the primary
// tag first, then the recommended tags. Components without a curated entry
// fall back to a partial match against the primary structural tags; no match
// returns an empty list.
func (m *Manager) RecommendedFor(component string) []string {
	name := strings.ToLower(component)

	if ct, ok := lookupComponent(name); ok {
		return append([]string{ct.Primary}, ct.Recommended...)
	}

	for _, tag := range primaryStructuralTags {
		if strings.Contains(name, tag) {
			return []string{tag}
		}
	}
	return nil
}

func lookupComponent(name string) (ComponentTags, bool) {
	if ct, ok := commonComponentTags[name]; ok {
		return ct, true
	}
	for key, ct := range commonComponentTags {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return ct, true
		}
	}
	return ComponentTags{}, false
}

// focusComponents maps a landing-page focus to the components it favors.
var focusComponents = map[string][]string{
	"conversion": {"pricing", "testimonials", "faq"},
	"trust":      {"testimonials", "partners", "team"},
	"awareness":  {"showcase", "stats", "gallery"},
	"engagement": {"newsletter", "contact", "process"},
}

// Combinations returns a recommended component line-up for a landing page:
// the essentials, then focus-specific picks, padded from the curated set up
// to count.
func (m *Manager) Combinations(count int, focus string) []string {
	result := []string{"hero", "features", "cta"}

	if extra, ok := focusComponents[focus]; ok {
		for _, c := range extra {
			if !contains(result, c) {
				result = append(result, c)
			}
		}
	}

	names := make([]string, 0, len(commonComponentTags))
	for name := range commonComponentTags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if len(result) >= count {
			break
		}
		if !contains(result, name) {
			result = append(result, name)
		}
	}

	if len(result) > count {
		result = result[:count]
	}
	return result
}

// CreateTagSet builds a balanced tag set: the primary tag plus one tag from
// each other category until additional tags are reached.
func (m *Manager) CreateTagSet(primary string, additional int, excludeCategories []string) []string {
	result := []string{primary}

	primaryCategory := ""
	for _, cat := range categoryOrder {
		if contains(categories[cat], primary) {
			primaryCategory = cat
			break
		}
	}

	for _, cat := range categoryOrder {
		if len(result) > additional {
			break
		}
		if cat == primaryCategory || contains(excludeCategories, cat) {
			continue
		}
		if tags := categories[cat]; len(tags) > 0 {
			result = append(result, tags[0])
		}
	}
	return result
}

// ValidateComponentTags checks a tag set for a component: all tags must be
// known, one must be a primary structural tag, and function/content/technical
// coverage is expected. Returns ok plus the list of violations.
func (m *Manager) ValidateComponentTags(component string, tagSet []string) (bool, []string) {
	var problems []string

	var invalid []string
	for _, tag := range tagSet {
		if !m.known[tag] {
			invalid = append(invalid, tag)
		}
	}
	if len(invalid) > 0 {
		problems = append(problems, "unknown tags: "+strings.Join(invalid, ", "))
	}

	if !anyIn(tagSet, primaryStructuralTags) {
		problems = append(problems, "missing primary structural tag")
	}

	for _, cat := range []string{CategoryFunction, CategoryContent, CategoryTechnical} {
		if !anyIn(tagSet, categories[cat]) {
			problems = append(problems, fmt.Sprintf("missing tag from %q category", cat))
		}
	}

	return len(problems) == 0, problems
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyIn(list, allowed []string) bool {
	for _, v := range list {
		if contains(allowed, v) {
			return true
		}
	}
	return false
}
