package domain

import (
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NormalizePath returns p with separators normalized to forward slashes, a
// leading "./" removed, and embedded "/./" segments collapsed. Two paths that
// normalize identically are considered equal; comparison stays case-sensitive.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(p, "./")
	for strings.Contains(p, "/./") {
		p = strings.ReplaceAll(p, "/./", "/")
	}
	return p
}

// EnsureMarkdownSuffix appends ".md" unless p already ends with it.
func EnsureMarkdownSuffix(p string) string {
	if strings.HasSuffix(strings.ToLower(p), ".md") {
		return p
	}
	return p + ".md"
}

// PathFilter decides whether a note is excluded from a report run, either as
// a link source or as a link target. The output paths of every configured
// preset are globally excluded so a report never counts links found inside
// another report or inside itself.
type PathFilter struct {
	outputPaths map[string]struct{}
}

// NewPathFilter builds a filter whose global exclusion list contains the
// normalized output path of every preset.
func NewPathFilter(presets []PresetConfig) *PathFilter {
	out := make(map[string]struct{}, len(presets))
	for _, p := range presets {
		if p.OutputPath == "" {
			continue
		}
		out[p.OutputNotePath()] = struct{}{}
	}
	return &PathFilter{outputPaths: out}
}

// IsExcluded reports whether notePath is excluded by the global output-path
// rule, by any filename regex matching the base name, or by any glob pattern
// matching the full path. Patterns that fail to compile are skipped.
func (f *PathFilter) IsExcluded(notePath string, filenamePatterns, globPatterns []string) bool {
	norm := NormalizePath(notePath)
	if _, ok := f.outputPaths[norm]; ok {
		return true
	}

	base := path.Base(norm)
	for _, pat := range filenamePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			continue
		}
		if re.MatchString(base) {
			return true
		}
	}

	for _, pat := range globPatterns {
		ok, err := doublestar.Match(pat, norm)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
