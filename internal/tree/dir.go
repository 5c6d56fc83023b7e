package tree

import (
	"context"
	"errors"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
)

// ListingState tells "never listed" apart from "listed and empty".
type ListingState int

const (
	Unlisted ListingState = iota
	ListedEmpty
	Listed
)

func (s ListingState) String() string {
	switch s {
	case ListedEmpty:
		return "listed-empty"
	case Listed:
		return "listed"
	default:
		return "unlisted"
	}
}

// Dir owns its child directories and files. Children are only present after
// a successful Populate or Refresh.
type Dir struct {
	name   string
	path   string
	hidden bool
	meta   *fsutil.Meta
	dirs   []*Dir
	files  []*File
	listed bool
}

// NewRoot creates an unlisted volume root. Its name is its path.
func NewRoot(path string) *Dir {
	return &Dir{name: path, path: path}
}

func newDir(e fsutil.Entry) *Dir {
	return &Dir{name: e.Name, path: e.Path, hidden: e.Hidden, meta: e.Meta}
}

func (d *Dir) Name() string       { return d.name }
func (d *Dir) Path() string       { return d.path }
func (d *Dir) Meta() *fsutil.Meta { return d.meta }
func (d *Dir) Hidden() bool       { return d.hidden }
func (d *Dir) IsDir() bool        { return true }

// State reports the tri-state population status.
func (d *Dir) State() ListingState {
	switch {
	case !d.listed:
		return Unlisted
	case len(d.dirs)+len(d.files) == 0:
		return ListedEmpty
	default:
		return Listed
	}
}

// Dirs returns the child directories in listing order.
func (d *Dir) Dirs() []*Dir { return d.dirs }

// Files returns the child files in listing order.
func (d *Dir) Files() []*File { return d.files }

// Len is the length of the merged listing.
func (d *Dir) Len() int { return len(d.dirs) + len(d.files) }

// EntryAt indexes the merged listing: directories first, then files.
func (d *Dir) EntryAt(i int) Node {
	if i < 0 || i >= d.Len() {
		return nil
	}
	if i < len(d.dirs) {
		return d.dirs[i]
	}
	return d.files[i-len(d.dirs)]
}

// Entries returns the merged listing.
func (d *Dir) Entries() []Node {
	nodes := make([]Node, 0, d.Len())
	for _, sub := range d.dirs {
		nodes = append(nodes, sub)
	}
	for _, f := range d.files {
		nodes = append(nodes, f)
	}
	return nodes
}

// ChildDirByPath finds a direct child directory by its full path. Display
// names can collide after normalisation; paths cannot.
func (d *Dir) ChildDirByPath(path string) *Dir {
	for _, sub := range d.dirs {
		if sub.path == path {
			return sub
		}
	}
	return nil
}

// Populate lists the directory once. It is a no-op when already listed.
func (d *Dir) Populate(ctx context.Context, fsys fsutil.FileSystem) error {
	if d.listed {
		return nil
	}
	return d.list(ctx, fsys)
}

// Refresh re-lists the directory and replaces the whole child set, discarding
// any cached grandchildren. On failure the previous children are kept.
func (d *Dir) Refresh(ctx context.Context, fsys fsutil.FileSystem) error {
	return d.list(ctx, fsys)
}

func (d *Dir) list(ctx context.Context, fsys fsutil.FileSystem) error {
	entries, err := fsys.ListDirectory(ctx, d.path)
	if err != nil {
		var listingErr *fsutil.ListingError
		if !errors.As(err, &listingErr) {
			err = &fsutil.ListingError{Path: d.path, Cause: err}
		}
		return err
	}

	dirs := make([]*Dir, 0, len(entries))
	files := make([]*File, 0, len(entries))
	for _, e := range entries {
		if e.Path == "" {
			e.Path = fsys.Join(d.path, e.Name)
		}
		if e.IsDir {
			dirs = append(dirs, newDir(e))
		} else {
			files = append(files, newFile(e))
		}
	}
	sortNodes(dirs)
	sortNodes(files)

	// Install the new children in one step; readers never see a half-built listing.
	d.dirs, d.files, d.listed = dirs, files, true
	return nil
}
