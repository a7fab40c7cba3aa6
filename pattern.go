package ignorewalk

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// rule is one compiled ignore pattern. Immutable once compiled.
type rule struct {
	// pattern is the normalized glob, already case-folded when requested.
	pattern string
	// ordinal is the line number within the rule's source, kept for
	// diagnostics and deterministic ordering.
	ordinal int
	// negated re-includes a path excluded by an earlier rule.
	negated bool
	// anchored patterns match relative to their scope root only.
	anchored bool
	// dirOnly rules (trailing "/") match directories exclusively.
	dirOnly bool
	// baseOnly rules (no slash in the pattern) match the final path
	// component at any depth below the scope root.
	baseOnly bool
}

// compileRule turns one pattern line into a rule. Returns ok=false for
// patterns the glob engine rejects; callers drop those silently per the
// degradation policy.
func compileRule(pattern string, negated bool, ordinal int, caseFold bool) (rule, bool) {
	r := rule{
		ordinal: ordinal,
		negated: negated,
	}

	if strings.HasSuffix(pattern, "/") {
		r.dirOnly = true
		pattern = strings.TrimSuffix(pattern, "/")
	}

	// A slash anywhere in the remaining pattern anchors it to the scope
	// root; a bare name floats and matches basenames at any depth.
	if strings.HasPrefix(pattern, "/") {
		r.anchored = true
		pattern = strings.TrimPrefix(pattern, "/")
	} else if strings.Contains(pattern, "/") {
		r.anchored = true
	}
	r.baseOnly = !r.anchored

	if pattern == "" {
		return rule{}, false
	}

	if caseFold {
		pattern = strings.ToLower(pattern)
	}

	if !doublestar.ValidatePattern(pattern) {
		return rule{}, false
	}

	r.pattern = pattern
	return r, true
}

// match reports whether the rule matches a candidate. rel is the candidate
// path relative to the rule's scope root, slash-separated and already
// case-folded when the walker is case-insensitive; base is its final
// component.
func (r *rule) match(rel, base string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}

	candidate := rel
	if r.baseOnly {
		candidate = base
	}

	ok, err := doublestar.Match(r.pattern, candidate)
	return err == nil && ok
}

// pathBase returns the final slash-separated path component.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}
