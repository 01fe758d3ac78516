// Package fs defines the filesystem abstraction used by logkeep.
// It provides the FS interface and the types shared by the retention
// engine and the logging setup.
package fs

import (
	"io"
	iofs "io/fs"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
}

// File is a log file opened for appending.
type File interface {
	io.Writer
	Sync() error
	Close() error
}

type FS interface {
	Stat(path string) (FileInfo, error)
	MkdirAll(path string) error
	ReadDir(path string) ([]iofs.DirEntry, error)
	Remove(path string) error
	Create(path string) (File, error)
}
