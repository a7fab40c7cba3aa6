package ignorewalk

// EntryType classifies a produced entry.
type EntryType uint8

const (
	TypeFile EntryType = iota
	TypeDir
	TypeSymlink
	TypeOther
)

func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is one filesystem entry that survived every filter. Entries are
// independent values; they hold no reference to walker state.
type Entry struct {
	// Path is the absolute path of the entry.
	Path string
	// Rel is the slash-separated path relative to the walk root.
	Rel string
	// Type classifies the entry. With WithFollowLinks(true), symlinks are
	// classified by their resolved target.
	Type EntryType
	// Depth is the entry's depth below the root; immediate children of the
	// root have depth 0.
	Depth int
}

// IsDir reports whether the entry is a directory (or, when following links,
// a symlink resolving to one).
func (e Entry) IsDir() bool {
	return e.Type == TypeDir
}

// Predicate is the external entry filter: it is invoked once per candidate
// that survived all pattern-based filtering, directories and files alike.
// Returning true excludes the entry and, for directories, prunes the subtree
// exactly as a pattern match would. An error also excludes the entry; it is
// reported to the walker's logger and skip record but never terminates the
// walk.
type Predicate interface {
	ShouldExclude(path string) (bool, error)
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(path string) (bool, error)

func (f PredicateFunc) ShouldExclude(path string) (bool, error) {
	return f(path)
}
