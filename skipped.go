package ignorewalk

// SkipReason clarifies why a candidate was not yielded.
type SkipReason string

const (
	ReasonHidden       SkipReason = "Ignored (Hidden Rule)"
	ReasonIgnoreRule   SkipReason = "Ignored (Ignore File Rule)"
	ReasonOverride     SkipReason = "Excluded (Override Pattern)"
	ReasonFiltered     SkipReason = "Excluded (Entry Filter)"
	ReasonFilterError  SkipReason = "Excluded (Entry Filter Error)"
	ReasonSizeLimit    SkipReason = "Skipped (Size Limit Exceeded)"
	ReasonOtherFS      SkipReason = "Skipped (Different Filesystem)"
	ReasonSymlinkCycle SkipReason = "Pruned (Symlink Cycle)"
	ReasonVCSInternal  SkipReason = "Skipped (VCS Internal)"
)

// SkippedItem records one excluded path and why.
type SkippedItem struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
	IsDir  bool       `json:"is_dir"`
}

// skipRecord accumulates skipped items when tracking is enabled. The walker
// is single-consumer, so no locking is needed.
type skipRecord struct {
	enabled bool
	items   []SkippedItem
}

func (r *skipRecord) track(path string, reason SkipReason, isDir bool) {
	if !r.enabled {
		return
	}

	r.items = append(r.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
