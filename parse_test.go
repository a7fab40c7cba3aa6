package ignorewalk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleLine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		pattern string
		negated bool
		ok      bool
	}{
		{"plain", "*.log", "*.log", false, true},
		{"negated", "!important.log", "important.log", true, true},
		{"comment", "# build artifacts", "", false, false},
		{"blank", "", "", false, false},
		{"spaces only", "   ", "", false, false},
		{"escaped hash", `\#literal`, "#literal", false, true},
		{"escaped bang", `\!literal`, "!literal", false, true},
		{"trailing spaces trimmed", "build/   ", "build/", false, true},
		{"escaped trailing space kept", `name\ `, "name ", false, true},
		{"carriage return stripped", "*.tmp\r", "*.tmp", false, true},
		{"bare negation", "!", "", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pattern, negated, ok := parseRuleLine(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.pattern, pattern)
				assert.Equal(t, tc.negated, negated)
			}
		})
	}
}

func TestParseRulesDropsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"*.log",
		"",
		"!keep.log",
		"broken[",
		"build/",
	}, "\n")

	rules, err := parseRules(strings.NewReader(input), "test", false, NoopLogger{})
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "*.log", rules[0].pattern)
	assert.False(t, rules[0].negated)
	assert.Equal(t, "keep.log", rules[1].pattern)
	assert.True(t, rules[1].negated)
	assert.True(t, rules[2].dirOnly)
}

func TestParseRulesKeepsSourceOrder(t *testing.T) {
	input := "a\nb\nc\n"

	rules, err := parseRules(strings.NewReader(input), "test", false, NoopLogger{})
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Less(t, rules[0].ordinal, rules[1].ordinal)
	assert.Less(t, rules[1].ordinal, rules[2].ordinal)
}

func TestParseRuleLines(t *testing.T) {
	rules := parseRuleLines([]string{"*.tmp", "# skip", "!keep.tmp"}, "config", false, NoopLogger{})
	require.Len(t, rules, 2)
	assert.False(t, rules[0].negated)
	assert.True(t, rules[1].negated)
}

func TestTrimTrailingSpaces(t *testing.T) {
	assert.Equal(t, "abc", trimTrailingSpaces("abc   "))
	assert.Equal(t, "abc", trimTrailingSpaces("abc\t"))
	assert.Equal(t, "abc ", trimTrailingSpaces(`abc\ `))
	assert.Equal(t, "", trimTrailingSpaces("   "))
}
