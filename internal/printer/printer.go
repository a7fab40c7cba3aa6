// Package printer handles entry output formatting
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/hollowlog/ignorewalk"
)

// Printer formats surviving walk entries to the configured destination.
type Printer struct {
	output      io.Writer
	count       atomic.Int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
	dirColor    *color.Color
}

// New creates a Printer with default settings.
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
		dirColor:  color.New(color.FgCyan, color.Bold),
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode.
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// jsonEntry is the wire form of one walk entry.
type jsonEntry struct {
	Path  string `json:"path"`
	Rel   string `json:"rel"`
	Type  string `json:"type"`
	Depth int    `json:"depth"`
}

// PrintEntry outputs one walk entry.
func (p *Printer) PrintEntry(e ignorewalk.Entry) {
	p.count.Add(1)

	if p.jsonOutput {
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		data, err := json.Marshal(jsonEntry{
			Path:  e.Path,
			Rel:   e.Rel,
			Type:  e.Type.String(),
			Depth: e.Depth,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}

		fmt.Fprintf(p.output, "  %s", data)
		return
	}

	if e.IsDir() && p.useColors {
		p.dirColor.Fprintln(p.output, e.Rel+"/")
		return
	}

	suffix := ""
	if e.IsDir() {
		suffix = "/"
	}
	fmt.Fprintf(p.output, "%s%s\n", e.Rel, suffix)
}

// Finalize completes any pending output (like closing the JSON array).
func (p *Printer) Finalize() {
	if p.jsonOutput && p.jsonStarted {
		fmt.Fprint(p.output, "\n]\n")
	}
}

// Count returns the number of entries printed.
func (p *Printer) Count() int64 {
	return p.count.Load()
}
