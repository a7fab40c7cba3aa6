package ignorewalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideMatcherDecide(t *testing.T) {
	m := newOverrideMatcher([]string{"*.log", "!debug.log"}, false, NoopLogger{})
	require.NotNil(t, m)

	assert.Equal(t, overrideInclude, m.decide("trace.log", false))
	assert.Equal(t, overrideExclude, m.decide("debug.log", false))
	assert.Equal(t, overrideNone, m.decide("readme.md", false))
}

func TestOverrideMatcherLastMatchWins(t *testing.T) {
	m := newOverrideMatcher([]string{"!*.log", "*.log"}, false, NoopLogger{})
	require.NotNil(t, m)

	assert.Equal(t, overrideInclude, m.decide("x.log", false))
}

func TestOverrideMatcherDegradesToAbsent(t *testing.T) {
	assert.Nil(t, newOverrideMatcher(nil, false, NoopLogger{}))
	assert.Nil(t, newOverrideMatcher([]string{"# only a comment"}, false, NoopLogger{}))
	assert.Nil(t, newOverrideMatcher([]string{"broken["}, false, NoopLogger{}))
}

func TestOverrideMatcherDirOnly(t *testing.T) {
	m := newOverrideMatcher([]string{"!build/"}, false, NoopLogger{})
	require.NotNil(t, m)

	assert.Equal(t, overrideExclude, m.decide("build", true))
	assert.Equal(t, overrideNone, m.decide("build", false))
}
