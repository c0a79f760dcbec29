// Package filter provides the keep/drop rules used to filter string lists.
// The same rules serve the filter command and config-driven filtering, so
// both behave identically.
package filter

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/rescale/strlist/internal/stringlist"
	"github.com/rescale/strlist/internal/util/tags"
)

// Config holds filter configuration.
type Config struct {
	// Include patterns (glob-style). Empty means include all.
	// Supports ** for any number of path segments, e.g. "**/results.dat".
	Include []string

	// Exclude patterns (glob-style). Takes precedence over Include.
	// Matched against the whole entry and against its last path segment.
	Exclude []string

	// Prefix restricts entries to those starting with one of the prefixes.
	Prefix []string

	// Search terms (case-insensitive substring match).
	// An entry must contain ALL search terms to be kept.
	Search []string
}

// IsEmpty reports whether the configuration keeps every entry.
func (c Config) IsEmpty() bool {
	return len(c.Include) == 0 && len(c.Exclude) == 0 && len(c.Prefix) == 0 && len(c.Search) == 0
}

// Match reports whether s passes the filter.
func (c Config) Match(s string) bool {
	s = filepath.ToSlash(s)

	// 1. Exclude patterns first (highest priority)
	for _, pattern := range c.Exclude {
		if matchPath(pattern, s) || matchPath(pattern, path.Base(s)) {
			return false
		}
	}

	// 2. Include patterns
	if len(c.Include) > 0 && !anyMatch(c.Include, s) {
		return false
	}

	// 3. Prefixes
	if len(c.Prefix) > 0 {
		found := false
		for _, prefix := range c.Prefix {
			if strings.HasPrefix(s, prefix) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// 4. Search terms
	if len(c.Search) > 0 {
		lower := strings.ToLower(s)
		for _, term := range c.Search {
			if !strings.Contains(lower, strings.ToLower(term)) {
				return false
			}
		}
	}

	return true
}

// Keep is a stringlist.Predicate applying a filter. data must be a Config.
func Keep(item *stringlist.Item[string], data any) bool {
	return data.(Config).Match(item.String)
}

// Apply removes from l every entry that does not pass cfg.
func Apply(l *stringlist.List, cfg Config) {
	if cfg.IsEmpty() {
		return
	}
	l.Filter(Keep, cfg)
}

// ParsePatternList parses a comma-separated list of patterns into a slice.
// Example: "*.dat,*.txt" -> []string{"*.dat", "*.txt"}
func ParsePatternList(patternStr string) []string {
	return tags.ParseCommaSeparated(patternStr)
}

func anyMatch(patterns []string, s string) bool {
	for _, pattern := range patterns {
		if matchPath(pattern, s) {
			return true
		}
	}
	return false
}

// matchPath matches name against a glob pattern in which a "**" segment
// stands for zero or more path segments.
func matchPath(pattern, name string) bool {
	pattern = filepath.ToSlash(pattern)
	if !strings.Contains(pattern, "**") {
		matched, err := path.Match(pattern, name)
		return err == nil && matched
	}

	var pat, segs stringlist.List
	pat.Split(pattern, '/', -1)
	segs.Split(name, '/', -1)
	return matchSegments(pat.Strings(), segs.Strings())
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			for len(pat) > 0 && pat[0] == "**" {
				pat = pat[1:]
			}
			if len(pat) == 0 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(pat, segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		// Treat a ** inside a segment as a plain *.
		matched, err := path.Match(strings.ReplaceAll(pat[0], "**", "*"), segs[0])
		if err != nil || !matched {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}
