package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowlog/ignorewalk"
)

func TestPrintEntryPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	p.PrintEntry(ignorewalk.Entry{Rel: "a.txt", Type: ignorewalk.TypeFile})
	p.PrintEntry(ignorewalk.Entry{Rel: "sub", Type: ignorewalk.TypeDir})
	p.Finalize()

	assert.Equal(t, "a.txt\nsub/\n", buf.String())
	assert.Equal(t, int64(2), p.Count())
}

func TestPrintEntryJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false).WithJSON(true)

	p.PrintEntry(ignorewalk.Entry{Path: "/r/a.txt", Rel: "a.txt", Type: ignorewalk.TypeFile, Depth: 0})
	p.PrintEntry(ignorewalk.Entry{Path: "/r/sub", Rel: "sub", Type: ignorewalk.TypeDir, Depth: 0})
	p.Finalize()

	var entries []struct {
		Path  string `json:"path"`
		Rel   string `json:"rel"`
		Type  string `json:"type"`
		Depth int    `json:"depth"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "a.txt", entries[0].Rel)
	assert.Equal(t, "file", entries[0].Type)
	assert.Equal(t, "sub", entries[1].Rel)
	assert.Equal(t, "dir", entries[1].Type)
}

func TestFinalizeWithoutEntries(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)
	p.Finalize()

	assert.Empty(t, buf.String())
}
