package ignorewalk

import (
	"bufio"
	"io"
	"strings"
)

// parseRuleLine splits one raw ignore-file line into pattern text and a
// negation flag.
//
// Semantics:
//   - blank lines and "#" comments yield ok=false
//   - "!" prefix marks a negated (re-include) rule
//   - `\#` and `\!` escape leading comment/negation tokens
//   - trailing unescaped spaces are trimmed
func parseRuleLine(raw string) (pattern string, negated bool, ok bool) {
	line := strings.TrimRight(raw, "\r")
	line = trimTrailingSpaces(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	if strings.HasPrefix(line, "!") {
		negated = true
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}

	if line == "" {
		return "", false, false
	}

	return line, negated, true
}

// parseRules reads gitignore-style lines and compiles them in order. Lines
// that fail to compile are dropped, never fatal; source names the origin for
// diagnostics only.
func parseRules(r io.Reader, source string, caseFold bool, log Logger) ([]rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]rule, 0, 16)
	ordinal := 0

	for s.Scan() {
		ordinal++
		pattern, negated, ok := parseRuleLine(s.Text())
		if !ok {
			continue
		}

		cr, ok := compileRule(pattern, negated, ordinal, caseFold)
		if !ok {
			log.Debug("ignorewalk: dropping malformed pattern %q (%s:%d)", pattern, source, ordinal)
			continue
		}

		rules = append(rules, cr)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// parseRuleLines compiles literal pattern lines supplied in configuration
// rather than read from a file.
func parseRuleLines(lines []string, source string, caseFold bool, log Logger) []rule {
	rules := make([]rule, 0, len(lines))
	for i, raw := range lines {
		pattern, negated, ok := parseRuleLine(raw)
		if !ok {
			continue
		}

		cr, ok := compileRule(pattern, negated, i+1, caseFold)
		if !ok {
			log.Debug("ignorewalk: dropping malformed pattern %q (%s)", pattern, source)
			continue
		}

		rules = append(rules, cr)
	}

	return rules
}

// trimTrailingSpaces removes trailing spaces and tabs unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
