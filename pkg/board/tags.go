package board

import "strings"

// ParseTags splits a comma-separated tag input, trims each entry, drops
// empties and collapses duplicates while preserving first-seen order.
// Parsing is idempotent: feeding the joined output back in yields the
// same list.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}

	return tags
}

// JoinTags renders a tag list back into the canonical comma-separated
// input form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
