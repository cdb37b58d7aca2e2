// Package skills canonicalizes free-text skill names so that set operations
// across employee profiles and project requirements are well defined.
package skills

import "strings"

// Normalize maps a free-text skill string to its canonical form. Known
// variants collapse via the alias table, already-canonical input passes
// through, and unknown tokens are title-cased. Idempotent for any input.
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	lowered := strings.ToLower(trimmed)
	if canonical, ok := aliasTable[lowered]; ok {
		return canonical
	}

	if _, ok := canonicalSet[trimmed]; ok {
		return trimmed
	}

	return titleCase(trimmed)
}

// DedupeNormalized normalizes every entry and drops duplicates, preserving
// first-occurrence order.
func DedupeNormalized(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		n := Normalize(raw)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// NormalizeSet returns the normalized skill names as a set.
func NormalizeSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, raw := range list {
		n := Normalize(raw)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		r := []rune(f)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
