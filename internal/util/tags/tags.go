// Package tags parses delimited lists of tags and patterns into normalized,
// duplicate-free slices.
package tags

import (
	"strings"

	"github.com/rescale/strlist/internal/stringlist"
)

// firstSeen is a stringlist.Predicate keeping only the first occurrence of
// each string. data must be a map[string]bool shared across calls.
func firstSeen(item *stringlist.Item[string], data any) bool {
	seen := data.(map[string]bool)
	if seen[item.String] {
		return false
	}
	seen[item.String] = true
	return true
}

// normalize trims, drops empty entries and deduplicates l in place, keeping
// first-occurrence order.
func normalize(l *stringlist.List) []string {
	l.Filter(func(item *stringlist.Item[string], _ any) bool {
		item.String = strings.TrimSpace(item.String)
		return item.String != ""
	}, nil)
	l.Filter(firstSeen, make(map[string]bool, l.Len()))
	if l.Len() == 0 {
		return nil
	}
	return l.Strings()
}

// NormalizeTags normalizes a list of tags by trimming whitespace,
// removing empty strings, and deduplicating.
func NormalizeTags(raw []string) []string {
	return normalize(stringlist.NewList(raw))
}

// ParseSeparated splits input at any byte of delims into normalized tags.
func ParseSeparated(input, delims string) []string {
	var l stringlist.List
	l.SplitAny(input, delims, -1, stringlist.SplitTrim|stringlist.SplitNonEmpty)
	return normalize(&l)
}

// ParseCommaSeparated splits a comma-separated string into normalized tags.
func ParseCommaSeparated(input string) []string {
	return ParseSeparated(input, ",")
}
