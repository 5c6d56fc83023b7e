package fs

import (
	"os"
	"time"
)

// Kind classifies a directory entry at the time it was listed.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindDir
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Meta is the attribute snapshot captured when an entry was listed.
// It is never refreshed; a re-listing produces a new snapshot.
type Meta struct {
	Size     int64
	Modified time.Time
	Mode     os.FileMode
	Kind     Kind
}

// Entry represents a single file or directory returned by a listing.
// Meta is nil when the entry could not be stat'ed.
type Entry struct {
	Name   string
	Path   string
	IsDir  bool
	Hidden bool
	Meta   *Meta
}

func kindFromMode(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

func newMeta(info os.FileInfo) *Meta {
	if info == nil {
		return nil
	}
	return &Meta{
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
		Kind:     kindFromMode(info.Mode()),
	}
}
