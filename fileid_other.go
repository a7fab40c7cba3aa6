//go:build !unix

package ignorewalk

import "io/fs"

// fileID is a filesystem identity: device plus inode.
type fileID struct {
	dev uint64
	ino uint64
}

// fileIDOf has no portable representation here; cycle detection and
// same-filesystem checks degrade to no-ops on this platform.
func fileIDOf(fi fs.FileInfo) (fileID, bool) {
	return fileID{}, false
}
