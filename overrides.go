package ignorewalk

// overrideDecision is the three-way outcome of consulting overrides.
type overrideDecision uint8

const (
	overrideNone overrideDecision = iota
	overrideInclude
	overrideExclude
)

// overrideMatcher is the globally-scoped, highest-precedence rule set built
// once from explicit override patterns. Plain patterns force-include, "!"
// patterns force-exclude; the last matching pattern wins. Its decision takes
// absolute precedence over every ignore-file scope in both directions.
type overrideMatcher struct {
	rules []rule
}

// newOverrideMatcher compiles the override pattern list. Malformed patterns
// are dropped individually; the matcher never fails to build, it only
// degrades toward "no overrides".
func newOverrideMatcher(patterns []string, caseFold bool, log Logger) *overrideMatcher {
	rules := parseRuleLines(patterns, "overrides", caseFold, log)
	if len(rules) == 0 {
		return nil
	}

	return &overrideMatcher{rules: rules}
}

// decide resolves a candidate against the override set. rel is relative to
// the walk root and already case-folded when applicable.
func (m *overrideMatcher) decide(rel string, isDir bool) overrideDecision {
	dec := overrideNone
	base := pathBase(rel)
	for i := range m.rules {
		if !m.rules[i].match(rel, base, isDir) {
			continue
		}

		// Negation is inverted relative to ignore files: "!pat" excludes.
		if m.rules[i].negated {
			dec = overrideExclude
		} else {
			dec = overrideInclude
		}
	}

	return dec
}
