package ignorewalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRuleFlags(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		anchored bool
		dirOnly  bool
	}{
		{"bare name floats", "*.log", false, false},
		{"trailing slash is dir only", "build/", false, true},
		{"leading slash anchors", "/dist", true, false},
		{"interior slash anchors", "doc/*.md", true, false},
		{"anchored dir only", "/vendor/", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := compileRule(tc.pattern, false, 1, false)
			require.True(t, ok)
			assert.Equal(t, tc.anchored, r.anchored)
			assert.Equal(t, tc.dirOnly, r.dirOnly)
			assert.Equal(t, !tc.anchored, r.baseOnly)
		})
	}
}

func TestCompileRuleRejectsInvalid(t *testing.T) {
	_, ok := compileRule("broken[", false, 1, false)
	assert.False(t, ok)

	_, ok = compileRule("/", false, 1, false)
	assert.False(t, ok)
}

func TestRuleMatchBaseOnly(t *testing.T) {
	r, ok := compileRule("*.log", false, 1, false)
	require.True(t, ok)

	assert.True(t, r.match("trace.log", "trace.log", false))
	assert.True(t, r.match("deep/nested/trace.log", "trace.log", false))
	assert.False(t, r.match("trace.txt", "trace.txt", false))
}

func TestRuleMatchAnchored(t *testing.T) {
	r, ok := compileRule("/dist", false, 1, false)
	require.True(t, ok)

	assert.True(t, r.match("dist", "dist", true))
	assert.False(t, r.match("sub/dist", "dist", true))

	r, ok = compileRule("doc/*.md", false, 1, false)
	require.True(t, ok)

	assert.True(t, r.match("doc/readme.md", "readme.md", false))
	assert.False(t, r.match("other/doc/readme.md", "readme.md", false))
}

func TestRuleMatchDirOnly(t *testing.T) {
	r, ok := compileRule("build/", false, 1, false)
	require.True(t, ok)

	assert.True(t, r.match("build", "build", true))
	assert.False(t, r.match("build", "build", false))
}

func TestRuleMatchDoublestar(t *testing.T) {
	r, ok := compileRule("**/*.gen.go", false, 1, false)
	require.True(t, ok)

	assert.True(t, r.match("a/b/types.gen.go", "types.gen.go", false))
	assert.False(t, r.match("a/b/types.go", "types.go", false))
}

func TestRuleMatchCaseFolded(t *testing.T) {
	r, ok := compileRule("*.LOG", false, 1, true)
	require.True(t, ok)

	assert.Equal(t, "*.log", r.pattern)
	// The walker folds candidates before matching.
	assert.True(t, r.match("error.log", "error.log", false))
}

func TestPathBase(t *testing.T) {
	assert.Equal(t, "c", pathBase("a/b/c"))
	assert.Equal(t, "c", pathBase("c"))
	assert.Equal(t, "", pathBase("a/"))
}
