package ignorewalk

// walkOptions is the immutable configuration snapshot a Walker holds for its
// lifetime. Values are set once through Options at construction.
type walkOptions struct {
	ignoreHidden          bool
	readIgnoreFiles       bool
	readParentsIgnores    bool
	readGitIgnore         bool
	readGlobalGitIgnore   bool
	readGitExclude        bool
	requireGit            bool
	additionalIgnores     []string
	additionalIgnorePaths []string
	overrides             []string
	maxDepth              int
	maxFilesize           int64
	followLinks           bool
	caseInsensitive       bool
	sameFileSystem        bool
	entryFilter           Predicate
	logger                Logger
	trackSkipped          bool
}

func defaultOptions() walkOptions {
	return walkOptions{
		ignoreHidden:        true,
		readIgnoreFiles:     true,
		readParentsIgnores:  true,
		readGitIgnore:       true,
		readGlobalGitIgnore: true,
		readGitExclude:      true,
		requireGit:          false,
		maxDepth:            -1,
		maxFilesize:         -1,
		logger:              NoopLogger{},
	}
}

// Option configures a Walker at construction time.
type Option func(*walkOptions)

// WithIgnoreHidden excludes entries whose name starts with a dot.
// Default: true.
func WithIgnoreHidden(enabled bool) Option {
	return func(o *walkOptions) {
		o.ignoreHidden = enabled
	}
}

// WithReadIgnoreFiles is the master switch for reading ignore files of any
// kind (.gitignore, .ignore, custom names, git excludes). Default: true.
func WithReadIgnoreFiles(enabled bool) Option {
	return func(o *walkOptions) {
		o.readIgnoreFiles = enabled
	}
}

// WithReadParentsIgnores also loads ignore files from ancestors of the root,
// between the containing git repository's root and the walk root.
// Default: true.
func WithReadParentsIgnores(enabled bool) Option {
	return func(o *walkOptions) {
		o.readParentsIgnores = enabled
	}
}

// WithReadGitIgnore honors .gitignore files. Default: true.
func WithReadGitIgnore(enabled bool) Option {
	return func(o *walkOptions) {
		o.readGitIgnore = enabled
	}
}

// WithReadGlobalGitIgnore honors the user's global git excludes file
// (core.excludesFile). Default: true.
func WithReadGlobalGitIgnore(enabled bool) Option {
	return func(o *walkOptions) {
		o.readGlobalGitIgnore = enabled
	}
}

// WithReadGitExclude honors the repository-local .git/info/exclude file.
// Default: true.
func WithReadGitExclude(enabled bool) Option {
	return func(o *walkOptions) {
		o.readGitExclude = enabled
	}
}

// WithRequireGit activates the git-derived ignore sources only when the root
// is inside a git repository. Default: false.
func WithRequireGit(enabled bool) Option {
	return func(o *walkOptions) {
		o.requireGit = enabled
	}
}

// WithAdditionalIgnores applies literal extra pattern lines at the root
// scope, as if appended to an ignore file there.
func WithAdditionalIgnores(patterns []string) Option {
	return func(o *walkOptions) {
		o.additionalIgnores = append([]string(nil), patterns...)
	}
}

// WithAdditionalIgnorePaths treats the given filenames, besides .ignore, as
// ignore files in every directory.
func WithAdditionalIgnorePaths(names []string) Option {
	return func(o *walkOptions) {
		o.additionalIgnorePaths = append([]string(nil), names...)
	}
}

// WithOverrides supplies explicit override patterns with the highest
// precedence: a plain pattern force-includes matching paths, a "!" pattern
// force-excludes them, in both cases regardless of any ignore file.
func WithOverrides(patterns []string) Option {
	return func(o *walkOptions) {
		o.overrides = append([]string(nil), patterns...)
	}
}

// WithMaxDepth caps descent depth. 0 yields only the immediate children of
// the root; negative values mean unbounded. Default: unbounded.
func WithMaxDepth(depth int) Option {
	return func(o *walkOptions) {
		o.maxDepth = depth
	}
}

// WithMaxFilesize excludes files larger than the given byte count,
// independent of pattern rules. Negative values mean unbounded.
// Default: unbounded.
func WithMaxFilesize(bytes int64) Option {
	return func(o *walkOptions) {
		o.maxFilesize = bytes
	}
}

// WithFollowLinks descends through symlinked directories, with cycle
// protection via resolved file identities. Default: false.
func WithFollowLinks(enabled bool) Option {
	return func(o *walkOptions) {
		o.followLinks = enabled
	}
}

// WithCaseInsensitive case-folds all pattern matching. Default: false.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *walkOptions) {
		o.caseInsensitive = enabled
	}
}

// WithSameFileSystem refuses to cross filesystem boundaries: entries on a
// different device than the root are excluded before any pattern is
// consulted. Default: false.
func WithSameFileSystem(enabled bool) Option {
	return func(o *walkOptions) {
		o.sameFileSystem = enabled
	}
}

// WithEntryFilter installs the external predicate described on Predicate.
func WithEntryFilter(p Predicate) Option {
	return func(o *walkOptions) {
		o.entryFilter = p
	}
}

// WithLogger directs walker diagnostics to the given logger.
// Default: NoopLogger.
func WithLogger(log Logger) Option {
	return func(o *walkOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithSkippedTracking records every excluded path with its reason,
// retrievable via Walker.Skipped. Default: false.
func WithSkippedTracking(enabled bool) Option {
	return func(o *walkOptions) {
		o.trackSkipped = enabled
	}
}
