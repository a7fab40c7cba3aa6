//go:build unix

package ignorewalk

import (
	"io/fs"
	"syscall"
)

// fileID is a filesystem identity: device plus inode.
type fileID struct {
	dev uint64
	ino uint64
}

// fileIDOf extracts the identity from a FileInfo. ok is false when the
// platform representation is unavailable.
func fileIDOf(fi fs.FileInfo) (fileID, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fileID{}, false
	}

	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
