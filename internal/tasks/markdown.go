// Package tasks implements the LLM-backed callers built on top of the
// completion client: component conversion, landing-tag selection, and
// schema-driven data generation.
package tasks

import (
	"regexp"
	"strings"
)

// ExtractCode returns the first fenced code block labeled with the given
// language, or the first unlabeled block when language is empty. Returns ""
// when no matching block exists.
func ExtractCode(markdown, language string) string {
	re := regexp.MustCompile("(?s)```" + regexp.QuoteMeta(strings.TrimSpace(language)) + "[ \t]*\n(.*?)(?:```|$)")
	m := re.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
