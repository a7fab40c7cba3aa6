package ignorewalk

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	gitIgnoreName = ".gitignore"
	dotIgnoreName = ".ignore"
	gitDirName    = ".git"
)

// findGitRoot ascends from dir looking for a .git entry (a directory, or a
// file for worktrees/submodules). Returns "" when none is found.
func findGitRoot(dir string) string {
	for {
		if fi, err := os.Stat(filepath.Join(dir, gitDirName)); err == nil {
			if fi.IsDir() || fi.Mode().IsRegular() {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// gitExcludePath returns the repository-local exclude file under gitRoot.
func gitExcludePath(gitRoot string) string {
	return filepath.Join(gitRoot, gitDirName, "info", "exclude")
}

// globalExcludesPath resolves the user's global git excludes file:
// core.excludesFile from the XDG git config or ~/.gitconfig, falling back to
// the XDG default ignore location. Returns "" when nothing applies.
func globalExcludesPath() string {
	home, _ := os.UserHomeDir()

	configs := []string{
		filepath.Join(xdgConfigHome(home), "git", "config"),
	}
	if home != "" {
		configs = append(configs, filepath.Join(home, ".gitconfig"))
	}

	for _, cfg := range configs {
		if p := excludesFileFrom(cfg); p != "" {
			return expandHome(p, home)
		}
	}

	fallback := filepath.Join(xdgConfigHome(home), "git", "ignore")
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}

	return ""
}

// excludesFileFrom scans one git config file for core.excludesFile. This is a
// deliberately minimal lookup: section headers plus key = value lines, which
// covers the configs git itself writes.
func excludesFileFrom(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	inCore := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			inCore = strings.EqualFold(line, "[core]")
			continue
		}

		if !inCore {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(key), "excludesfile") {
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
	}

	return ""
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	return filepath.Join(home, ".config")
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}

	return path
}
