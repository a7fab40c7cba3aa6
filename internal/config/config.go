// Package config holds the CLI configuration and its flag bindings.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Config holds all CLI settings.
type Config struct {
	// Directory settings
	RootDir string

	// Logging settings
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	OutputFile  string
	ShowSkipped bool

	// Filtering settings
	IgnoreHidden     bool
	ReadIgnoreFiles  bool
	ReadParents      bool
	ReadGitIgnore    bool
	ReadGlobalIgnore bool
	ReadGitExclude   bool
	RequireGit       bool
	CustomIgnores    []string
	IgnoreFileNames  []string
	Overrides        []string
	MaxDepth         int
	MaxFileSize      int64
	FollowLinks      bool
	IgnoreCase       bool
	SameFileSystem   bool

	// Output format
	JSONOutput bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a Config with built-in defaults. Flag parsing fills the rest.
func New() *Config {
	return &Config{
		Version:  "1.0.0",
		MaxDepth: -1,
	}
}

// AddFlags registers every CLI flag on the given flag set, bound to c.
func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.RootDir, "dir", "d", ".", "The root directory to walk")
	flags.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	flags.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flags.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flags.StringVarP(&c.OutputFile, "output", "o", "", "Output to file instead of stdout")
	flags.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a table of skipped entries and reasons at the end")

	flags.BoolVar(&c.IgnoreHidden, "hidden", true, "Ignore hidden files/directories (starting with '.')")
	flags.BoolVar(&c.ReadIgnoreFiles, "ignore-files", true, "Honor ignore files of any kind")
	flags.BoolVar(&c.ReadParents, "parents", true, "Honor ignore files in ancestors of the root")
	flags.BoolVar(&c.ReadGitIgnore, "gitignore", true, "Honor .gitignore files")
	flags.BoolVar(&c.ReadGlobalIgnore, "global-gitignore", true, "Honor the global git excludes file")
	flags.BoolVar(&c.ReadGitExclude, "git-exclude", true, "Honor .git/info/exclude")
	flags.BoolVar(&c.RequireGit, "require-git", false, "Apply git ignore sources only inside a git repository")
	flags.StringSliceVarP(&c.CustomIgnores, "ignore", "i", nil, "Extra ignore patterns (gitignore syntax)")
	flags.StringSliceVar(&c.IgnoreFileNames, "ignore-file", nil, "Extra per-directory ignore file names")
	flags.StringSliceVar(&c.Overrides, "override", nil, "Override patterns ('pat' force-includes, '!pat' force-excludes)")
	flags.IntVar(&c.MaxDepth, "max-depth", -1, "Max descent depth (-1 = unbounded, 0 = root's children only)")
	flags.Int64Var(&c.MaxFileSize, "max-size", -1, "Max file size in bytes (-1 = no limit)")
	flags.BoolVarP(&c.FollowLinks, "follow", "L", false, "Follow symlinked directories")
	flags.BoolVar(&c.IgnoreCase, "ignore-case", false, "Match patterns case-insensitively")
	flags.BoolVar(&c.SameFileSystem, "same-file-system", false, "Do not cross filesystem boundaries")

	flags.BoolVar(&c.JSONOutput, "json", false, "Output entries in JSON format")
	flags.BoolVarP(&c.ShowVersion, "version", "V", false, "Show version information")
}

// Finalize derives settings that depend on the parsed flags and environment.
func (c *Config) Finalize() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""
}
