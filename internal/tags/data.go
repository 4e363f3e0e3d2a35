// Package tags provides the static landing-page component tag catalog and
// lookup operations over it. No LLM calls happen here.
package tags

// Category names, in catalog order.
const (
	CategoryPrimary    = "primary"
	CategoryFunction   = "function"
	CategoryContent    = "content"
	CategoryStyle      = "style"
	CategoryTechnical  = "technical"
	CategoryPlacement  = "placement"
	CategoryMarketing  = "marketing"
	CategoryComplexity = "complexity"
	CategoryAudience   = "audience"
)

var primaryStructuralTags = []string{
	"hero", "header", "footer", "navigation", "cta", "testimonials",
	"features", "pricing", "faq", "contact", "team", "stats", "newsletter",
	"banner", "gallery", "partners", "showcase", "process",
}

var componentFunctionTags = []string{
	"action-trigger", "data-display", "content-container", "form-element",
	"feedback", "navigation-element", "social-proof", "disclosure",
	"media-display", "state-indicator",
}

var contentTypeTags = []string{
	"text-heavy", "visual-dominant", "icon-based", "form",
	"interactive-element", "data-visualization", "mixed-media",
}

var stylingThemeTags = []string{
	"minimalist", "bold", "dark-mode", "gradient", "glassmorphism",
	"neumorphic", "skeuomorphic", "flat-design", "animated",
	"gradient-border", "shadow-heavy", "rounded",
}

var technicalBehaviorTags = []string{
	"responsive-mobile", "responsive-desktop", "interactive", "static",
	"dynamic-content", "lazy-loaded", "fixed-position", "sticky-element",
	"accessibility-optimized", "performance-critical",
}

var placementContextTags = []string{
	"above-fold", "below-fold", "full-width", "container-bound",
	"floating-element", "section-divider", "overlay",
}

var marketingPurposeTags = []string{
	"lead-generation", "conversion-focused", "brand-awareness",
	"product-highlight", "trust-building", "engagement", "scarcity-timer",
}

var componentComplexityTags = []string{
	"simple", "composite", "animated-complex", "custom-integration",
	"theme-variant",
}

var audienceStageTags = []string{
	"awareness-stage", "consideration-stage", "decision-stage",
	"retention-focused",
}

// categories maps category name to its tags.
var categories = map[string][]string{
	CategoryPrimary:    primaryStructuralTags,
	CategoryFunction:   componentFunctionTags,
	CategoryContent:    contentTypeTags,
	CategoryStyle:      stylingThemeTags,
	CategoryTechnical:  technicalBehaviorTags,
	CategoryPlacement:  placementContextTags,
	CategoryMarketing:  marketingPurposeTags,
	CategoryComplexity: componentComplexityTags,
	CategoryAudience:   audienceStageTags,
}

var categoryOrder = []string{
	CategoryPrimary, CategoryFunction, CategoryContent, CategoryStyle,
	CategoryTechnical, CategoryPlacement, CategoryMarketing,
	CategoryComplexity, CategoryAudience,
}

// ComponentTags is the curated tag set for a well-known component.
type ComponentTags struct {
	Primary     string
	Recommended []string
}

// commonComponentTags holds curated combinations for frequent components.
var commonComponentTags = map[string]ComponentTags{
	"hero": {
		Primary:     "hero",
		Recommended: []string{"visual-dominant", "action-trigger", "above-fold", "brand-awareness", "awareness-stage"},
	},
	"pricing": {
		Primary:     "pricing",
		Recommended: []string{"content-container", "data-display", "interactive", "conversion-focused", "decision-stage"},
	},
	"testimonials": {
		Primary:     "testimonials",
		Recommended: []string{"social-proof", "trust-building", "consideration-stage", "text-heavy", "media-display"},
	},
	"features": {
		Primary:     "features",
		Recommended: []string{"content-container", "icon-based", "product-highlight", "consideration-stage"},
	},
	"cta": {
		Primary:     "cta",
		Recommended: []string{"action-trigger", "conversion-focused", "simple", "decision-stage"},
	},
	"footer": {
		Primary:     "footer",
		Recommended: []string{"navigation-element", "below-fold", "text-heavy", "full-width"},
	},
	"header": {
		Primary:     "header",
		Recommended: []string{"navigation-element", "above-fold", "fixed-position", "responsive-mobile"},
	},
	"faq": {
		Primary:     "faq",
		Recommended: []string{"disclosure", "text-heavy", "consideration-stage", "trust-building"},
	},
	"contact": {
		Primary:     "contact",
		Recommended: []string{"form-element", "lead-generation", "decision-stage"},
	},
}

// All returns every tag across all categories, in catalog order.
func All() []string {
	var all []string
	for _, cat := range categoryOrder {
		all = append(all, categories[cat]...)
	}
	return all
}

// Categories returns the category names in catalog order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ByCategory returns the tags for a category, or false if it doesn't exist.
func ByCategory(category string) ([]string, bool) {
	tags, ok := categories[category]
	return tags, ok
}
