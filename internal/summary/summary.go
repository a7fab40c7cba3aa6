// Package summary renders end-of-walk statistics and the skipped-entry table.
package summary

import (
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/hollowlog/ignorewalk"
)

// Logger defines the minimal logging interface required.
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a walk.
func DisplayResults(logger Logger, entryCount int64, duration time.Duration, quiet bool) {
	if quiet {
		return
	}

	logger.Info("Listed %d entries.", entryCount)
	logger.Info("Walk complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkipped renders the excluded entries as a table, sorted by path for
// stable output.
func DisplaySkipped(logger Logger, skipped []ignorewalk.SkippedItem, output io.Writer, quiet bool) {
	if !quiet {
		logger.Info("--- Skipped Entries (%d) ---", len(skipped))
	}
	if len(skipped) == 0 {
		return
	}

	// Sort a copy; the slice belongs to the walker's record.
	items := append([]ignorewalk.SkippedItem(nil), skipped...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Path", "Type", "Reason"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR"
		}
		table.Append([]string{item.Path, typeStr, string(item.Reason)})
	}

	table.Render()
}
