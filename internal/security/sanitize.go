package security

import (
	"regexp"
	"strings"
)

// Patterns stripped from free text, applied in this order.
var disallowedMarkup = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b.*?</script\s*>`),
	regexp.MustCompile(`(?is)<iframe\b.*?</iframe\s*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
}

// SanitizeHTML strips script and iframe blocks, javascript: URI prefixes and
// inline event-handler attributes, then trims surrounding whitespace.
//
// This is pattern matching, not an HTML parser. It is a client-side filter
// and does not replace sanitization at the store.
func SanitizeHTML(input string) string {
	out := input
	// Removing one match can splice together another (e.g. "javajavascript:script:"),
	// so repeat until nothing changes.
	for {
		next := out
		for _, re := range disallowedMarkup {
			next = re.ReplaceAllString(next, "")
		}
		next = strings.TrimSpace(next)
		if next == out {
			return out
		}
		out = next
	}
}
