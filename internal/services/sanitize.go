package services

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// CleanText strips all markup from s and trims it. Entities produced by the
// sanitizer are decoded so templates escape the text exactly once.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict().Sanitize(s)))
}
