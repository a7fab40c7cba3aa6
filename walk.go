package ignorewalk

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// State is the walker's lifecycle phase.
type State uint8

const (
	// StateReady means constructed, not yet iterated.
	StateReady State = iota
	// StateActive means at least one advance was performed.
	StateActive
	// StateExhausted means the cursor emptied with no pending error.
	StateExhausted
	// StateFailed means an unrecoverable I/O error ended the walk.
	StateFailed
)

// dirFrame is one pending directory on the traversal cursor. Its listing and
// rule scopes are materialized lazily, on the first advance that drains it;
// directories excluded before descent are never materialized at all.
type dirFrame struct {
	abs       string
	rel       string
	depth     int // depth assigned to entries inside this directory
	entries   []fs.DirEntry
	next      int
	loaded    bool
	scopeMark int
}

// dirSource names one ignore file loaded per directory, in evaluation order
// (least precedence first).
type dirSource struct {
	name string
	kind sourceKind
}

// Walker composes the pattern scopes, override matcher, and traversal cursor
// into a single pull-based iterator over a directory tree. It is single-pass
// and not safe for concurrent use.
type Walker struct {
	opts       walkOptions
	rootAbs    string
	rootID     fileID
	rootIDOK   bool
	gitRoot    string
	gitActive  bool
	skipVCSDir bool
	dirSources []dirSource
	overrides  *overrideMatcher
	rules      ruleStack
	stack      []*dirFrame
	visited    map[fileID]struct{}
	skips      skipRecord
	state      State
	cur        Entry
	err        error
}

// New constructs a Walker rooted at root. Construction fails only for an
// unusable root; malformed filter input degrades per the documented policy
// and never returns an error.
func New(root string, opts ...Option) (*Walker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ignorewalk: resolve root %q: %w", root, err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("ignorewalk: stat root: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	w := &Walker{
		opts:    o,
		rootAbs: abs,
		skips:   skipRecord{enabled: o.trackSkipped},
	}

	if o.sameFileSystem || o.followLinks {
		if id, ok := fileIDOf(fi); ok {
			w.rootID = id
			w.rootIDOK = true
		}
	}
	if o.followLinks {
		w.visited = make(map[fileID]struct{})
	}

	w.overrides = newOverrideMatcher(o.overrides, o.caseInsensitive, o.logger)
	w.initSources()
	w.buildBaseScopes()

	return w, nil
}

// initSources resolves the git context and fixes the per-directory ignore
// file list in evaluation order.
func (w *Walker) initSources() {
	o := &w.opts

	if o.readIgnoreFiles {
		w.gitRoot = findGitRoot(w.rootAbs)
	}
	w.gitActive = !o.requireGit || w.gitRoot != ""

	vcsSources := o.readGitIgnore || o.readGitExclude || o.readGlobalGitIgnore
	w.skipVCSDir = o.readIgnoreFiles && w.gitActive && vcsSources

	if !o.readIgnoreFiles {
		return
	}

	if o.readGitIgnore && w.gitActive {
		w.dirSources = append(w.dirSources, dirSource{gitIgnoreName, sourceGitIgnore})
	}
	w.dirSources = append(w.dirSources, dirSource{dotIgnoreName, sourceCustomIgnore})
	for _, name := range o.additionalIgnorePaths {
		if name != "" && !strings.ContainsRune(name, os.PathSeparator) {
			w.dirSources = append(w.dirSources, dirSource{name, sourceCustomIgnore})
		}
	}
}

// buildBaseScopes assembles the scopes that outlive every directory frame:
// the global git excludes, the repository exclude file, ignore files from
// ancestors between the git root and the walk root, and literal extra
// patterns. Pushed least specific first.
func (w *Walker) buildBaseScopes() {
	o := &w.opts

	if o.readIgnoreFiles && w.gitActive {
		if o.readGlobalGitIgnore {
			if p := globalExcludesPath(); p != "" {
				scopeDir := w.gitRoot
				if scopeDir == "" {
					scopeDir = w.rootAbs
				}
				w.pushBaseFileScope(p, sourceGlobalGitIgnore, scopeDir)
			}
		}
		if o.readGitExclude && w.gitRoot != "" {
			w.pushBaseFileScope(gitExcludePath(w.gitRoot), sourceGitExclude, w.gitRoot)
		}
	}

	if o.readIgnoreFiles && o.readParentsIgnores && w.gitRoot != "" && w.gitRoot != w.rootAbs {
		for _, dir := range w.parentDirs() {
			for _, src := range w.dirSources {
				w.pushBaseFileScope(filepath.Join(dir, src.name), src.kind, dir)
			}
		}
	}

	if len(o.additionalIgnores) > 0 {
		rules := parseRuleLines(o.additionalIgnores, "additional ignores", o.caseInsensitive, o.logger)
		if len(rules) > 0 {
			w.rules.push(&ruleScope{kind: sourceCustomIgnore, rules: rules})
		}
	}
}

// parentDirs lists the ancestors of the walk root from the git root down to
// the root's immediate parent, outermost first.
func (w *Walker) parentDirs() []string {
	var dirs []string
	for dir := filepath.Dir(w.rootAbs); ; dir = filepath.Dir(dir) {
		dirs = append(dirs, dir)
		if dir == w.gitRoot || dir == filepath.Dir(dir) {
			break
		}
	}

	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	return dirs
}

// pushBaseFileScope loads one ignore file rooted at or above the walk root.
func (w *Walker) pushBaseFileScope(path string, kind sourceKind, scopeDir string) {
	rules := loadRuleFile(path, w.opts.caseInsensitive, w.opts.logger)
	if len(rules) == 0 {
		return
	}

	base := ""
	if rel, err := filepath.Rel(scopeDir, w.rootAbs); err == nil && rel != "." {
		base = w.fold(filepath.ToSlash(rel))
	}

	w.rules.push(&ruleScope{kind: kind, base: base, rules: rules})
}

// Next advances to the next surviving entry. It returns false when the walk
// is exhausted or has failed; check Err to distinguish.
func (w *Walker) Next() bool {
	switch w.state {
	case StateExhausted, StateFailed:
		return false
	case StateReady:
		w.state = StateActive
		if w.opts.followLinks && w.rootIDOK {
			w.visited[w.rootID] = struct{}{}
		}
		w.stack = append(w.stack, &dirFrame{abs: w.rootAbs})
	}

	for len(w.stack) > 0 {
		frame := w.stack[len(w.stack)-1]
		if !frame.loaded {
			if !w.loadFrame(frame) {
				return false
			}
		}

		if frame.next >= len(frame.entries) {
			w.popFrame()
			continue
		}

		de := frame.entries[frame.next]
		frame.next++

		if entry, ok := w.evaluate(frame, de); ok {
			w.cur = entry
			return true
		}
	}

	w.state = StateExhausted
	return false
}

// Entry returns the entry produced by the last successful Next.
func (w *Walker) Entry() Entry {
	return w.cur
}

// Err returns the terminal walk error, if any. It is non-nil only in
// StateFailed and is always a *WalkError.
func (w *Walker) Err() error {
	return w.err
}

// State reports the walker's lifecycle phase.
func (w *Walker) State() State {
	return w.state
}

// Root returns the absolute root path being walked.
func (w *Walker) Root() string {
	return w.rootAbs
}

// Skipped returns the excluded paths recorded so far. Empty unless
// WithSkippedTracking was enabled.
func (w *Walker) Skipped() []SkippedItem {
	return w.skips.items
}

// All adapts the walker to a range-over-func sequence. A terminal error is
// yielded once, as the final element.
func (w *Walker) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for w.Next() {
			if !yield(w.cur, nil) {
				return
			}
		}
		if w.err != nil {
			yield(Entry{}, w.err)
		}
	}
}

// loadFrame compiles the directory's rule scopes and reads its listing.
// Failure to read the listing is terminal.
func (w *Walker) loadFrame(f *dirFrame) bool {
	f.scopeMark = w.rules.len()
	if scopes := w.loadDirScopes(f.abs, f.rel); len(scopes) > 0 {
		w.rules.push(scopes...)
	}

	entries, err := os.ReadDir(f.abs)
	if err != nil {
		w.err = &WalkError{Path: f.abs, Err: err}
		w.state = StateFailed
		return false
	}

	f.entries = entries
	f.loaded = true
	return true
}

// loadDirScopes compiles the ignore files present in one directory, in
// evaluation order.
func (w *Walker) loadDirScopes(absDir, relDir string) []*ruleScope {
	if !w.opts.readIgnoreFiles {
		return nil
	}

	dir := w.fold(relDir)

	var scopes []*ruleScope
	for _, src := range w.dirSources {
		rules := loadRuleFile(filepath.Join(absDir, src.name), w.opts.caseInsensitive, w.opts.logger)
		if len(rules) == 0 {
			continue
		}
		scopes = append(scopes, &ruleScope{kind: src.kind, dir: dir, rules: rules})
	}

	return scopes
}

// popFrame backtracks out of the current directory, discarding its scopes.
func (w *Walker) popFrame() {
	frame := w.stack[len(w.stack)-1]
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]
	w.rules.truncate(frame.scopeMark)
}

// evaluate runs one candidate through the filter chain: filesystem boundary
// and size first (cheapest, not overridable), then overrides, then the
// hidden rule and ignore scopes, then the external filter. Included
// directories are scheduled for descent; excluded ones are pruned without
// ever being opened.
func (w *Walker) evaluate(frame *dirFrame, de fs.DirEntry) (Entry, bool) {
	name := de.Name()
	rel := name
	if frame.rel != "" {
		rel = frame.rel + "/" + name
	}
	abs := filepath.Join(frame.abs, name)
	depth := frame.depth

	entryType, isDir := w.classify(abs, de)

	if w.opts.sameFileSystem && w.rootIDOK {
		if info, err := de.Info(); err == nil {
			if id, ok := fileIDOf(info); ok && id.dev != w.rootID.dev {
				w.skips.track(rel, ReasonOtherFS, isDir)
				return Entry{}, false
			}
		}
	}

	if w.opts.maxFilesize >= 0 && entryType == TypeFile {
		if size, ok := w.fileSize(abs, de); ok && size > w.opts.maxFilesize {
			w.skips.track(rel, ReasonSizeLimit, false)
			return Entry{}, false
		}
	}

	crel := w.fold(rel)

	dec := overrideNone
	if w.overrides != nil {
		dec = w.overrides.decide(crel, isDir)
	}
	if dec == overrideExclude {
		w.skips.track(rel, ReasonOverride, isDir)
		return Entry{}, false
	}

	if dec == overrideNone {
		if w.opts.ignoreHidden && strings.HasPrefix(name, ".") {
			w.skips.track(rel, ReasonHidden, isDir)
			return Entry{}, false
		}

		if isDir && name == gitDirName && w.skipVCSDir {
			w.skips.track(rel, ReasonVCSInternal, true)
			return Entry{}, false
		}

		if !w.rules.resolve(crel, isDir) {
			w.skips.track(rel, ReasonIgnoreRule, isDir)
			return Entry{}, false
		}
	}

	if w.opts.entryFilter != nil {
		exclude, err := w.opts.entryFilter.ShouldExclude(abs)
		if err != nil {
			w.opts.logger.Warn("ignorewalk: entry filter failed for %s: %v", abs, err)
			w.skips.track(rel, ReasonFilterError, isDir)
			return Entry{}, false
		}
		if exclude {
			w.skips.track(rel, ReasonFiltered, isDir)
			return Entry{}, false
		}
	}

	if isDir && w.wantDescend(depth) {
		if w.isCycle(abs, rel) {
			return Entry{}, false
		}
		w.stack = append(w.stack, &dirFrame{abs: abs, rel: rel, depth: depth + 1})
	}

	return Entry{Path: abs, Rel: rel, Type: entryType, Depth: depth}, true
}

// classify determines the entry type, resolving symlinks when following
// links. isDir reports whether the walker treats the entry as a directory.
func (w *Walker) classify(abs string, de fs.DirEntry) (EntryType, bool) {
	mode := de.Type()
	switch {
	case mode.IsDir():
		return TypeDir, true
	case mode&fs.ModeSymlink != 0:
		if w.opts.followLinks {
			if fi, err := os.Stat(abs); err == nil {
				switch {
				case fi.IsDir():
					return TypeDir, true
				case fi.Mode().IsRegular():
					return TypeFile, false
				default:
					return TypeOther, false
				}
			}
		}
		return TypeSymlink, false
	case mode.IsRegular():
		return TypeFile, false
	default:
		return TypeOther, false
	}
}

// fileSize returns the byte size relevant for the max-filesize bound: the
// link target's size when following links, the entry's own otherwise.
func (w *Walker) fileSize(abs string, de fs.DirEntry) (int64, bool) {
	if de.Type()&fs.ModeSymlink != 0 {
		fi, err := os.Stat(abs)
		if err != nil {
			return 0, false
		}
		return fi.Size(), true
	}

	info, err := de.Info()
	if err != nil {
		return 0, false
	}

	return info.Size(), true
}

// fold case-folds candidate paths and scope prefixes when matching is
// case-insensitive. Scope dir/base values and candidates must go through the
// same fold so prefix comparisons stay consistent.
func (w *Walker) fold(s string) string {
	if w.opts.caseInsensitive {
		return strings.ToLower(s)
	}

	return s
}

// wantDescend reports whether children at depth+1 are still within bounds.
func (w *Walker) wantDescend(depth int) bool {
	return w.opts.maxDepth < 0 || depth+1 <= w.opts.maxDepth
}

// isCycle reports whether the directory's resolved identity was already
// descended into. Only consulted when following links; a repeat identity
// prunes the subtree silently.
func (w *Walker) isCycle(abs, rel string) bool {
	if !w.opts.followLinks {
		return false
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return false
	}

	id, ok := fileIDOf(fi)
	if !ok {
		return false
	}

	if _, seen := w.visited[id]; seen {
		w.skips.track(rel, ReasonSymlinkCycle, true)
		return true
	}

	w.visited[id] = struct{}{}
	return false
}
