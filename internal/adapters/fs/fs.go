package fs

import (
	iofs "io/fs"
)

// FileSystem is the filesystem surface the pipeline mutates. Tests
// substitute wrappers (e.g. to force symlink failures) without touching
// the real staging logic.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	DirExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	RemoveAll(path string) error
	Symlink(oldname, newname string) error
	CopyDir(src, dst string) error
	WalkDir(root string, fn iofs.WalkDirFunc) error
}
