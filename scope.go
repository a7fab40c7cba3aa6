package ignorewalk

import (
	"os"
	"strings"
)

// sourceKind tags a rule scope with where its rules came from. Scopes are
// evaluated least specific first, so within one directory the kinds are
// ordered exclude < gitignore < custom, and the global scope precedes all.
type sourceKind uint8

const (
	sourceOverride sourceKind = iota
	sourceGlobalGitIgnore
	sourceGitExclude
	sourceGitIgnore
	sourceCustomIgnore
)

func (k sourceKind) String() string {
	switch k {
	case sourceOverride:
		return "override"
	case sourceGlobalGitIgnore:
		return "global-git-ignore"
	case sourceGitExclude:
		return "git-exclude"
	case sourceGitIgnore:
		return "gitignore"
	case sourceCustomIgnore:
		return "custom-ignore"
	default:
		return "unknown"
	}
}

// ruleScope owns the ordered rules compiled from one source, rooted at one
// directory. dir is the scope directory relative to the walk root ("" for
// root-level scopes); base is non-empty for scopes rooted above the walk root
// and holds the walk root's path relative to the scope directory. Both carry
// the same case fold as the candidates they are compared against.
type ruleScope struct {
	kind  sourceKind
	dir   string
	base  string
	rules []rule
}

// decide evaluates the scope against a candidate given relative to the walk
// root. It reports whether any rule matched and, if so, whether the last
// matching rule includes the candidate.
func (s *ruleScope) decide(rel string, isDir bool) (matched, included bool) {
	candidate := rel
	switch {
	case s.base != "":
		candidate = s.base + "/" + rel
	case s.dir != "":
		// Rules from dir's ignore file govern paths under dir, never the
		// directory itself.
		if rel == s.dir || !strings.HasPrefix(rel, s.dir+"/") {
			return false, false
		}
		candidate = rel[len(s.dir)+1:]
	}

	base := pathBase(candidate)
	for i := range s.rules {
		if s.rules[i].match(candidate, base, isDir) {
			matched = true
			included = s.rules[i].negated
		}
	}

	return matched, included
}

// ruleStack is the ordered chain of scopes from traversal root down to the
// current directory: pushed on descent, truncated on ascent, shared by
// reference and never copied per directory.
type ruleStack struct {
	scopes []*ruleScope
}

func (st *ruleStack) push(scopes ...*ruleScope) {
	st.scopes = append(st.scopes, scopes...)
}

func (st *ruleStack) len() int {
	return len(st.scopes)
}

func (st *ruleStack) truncate(n int) {
	for i := n; i < len(st.scopes); i++ {
		st.scopes[i] = nil
	}
	st.scopes = st.scopes[:n]
}

// resolve walks every scope from least to most specific and lets the last
// matching rule anywhere in the chain decide. No match defaults to included.
func (st *ruleStack) resolve(rel string, isDir bool) bool {
	included := true
	for _, scope := range st.scopes {
		if m, inc := scope.decide(rel, isDir); m {
			included = inc
		}
	}

	return included
}

// loadRuleFile reads and compiles one ignore file. A missing file yields no
// rules; an unreadable one is logged and treated as absent rather than
// aborting the walk.
func loadRuleFile(path string, caseFold bool, log Logger) []rule {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("ignorewalk: cannot read ignore file %s: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	rules, err := parseRules(f, path, caseFold, log)
	if err != nil {
		log.Warn("ignorewalk: cannot read ignore file %s: %v", path, err)
		return nil
	}

	return rules
}
