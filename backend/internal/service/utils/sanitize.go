package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips every HTML element from user-authored text and trims it.
// Entities escaped by the policy are turned back into plain characters since
// responses are JSON, not HTML.
func SanitizeText(text string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(text)))
}
