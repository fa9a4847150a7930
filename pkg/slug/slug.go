// Package slug derives URL-safe public identifiers from display names.
package slug

import "strings"

// Make lowercases the input, collapses every run of non-alphanumeric
// characters into a single hyphen and strips leading/trailing hyphens.
// The result matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty. Deterministic:
// it carries no collision avoidance, the store rejects duplicates.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
