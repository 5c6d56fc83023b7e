// Package tree is the in-memory model of the browsed filesystem: a tree of
// lazily listed directories owned top-down, without parent pointers.
package tree

import (
	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
)

// Node is either a *Dir or a *File.
type Node interface {
	Name() string
	Path() string
	Meta() *fsutil.Meta
	Hidden() bool
	IsDir() bool
}

var (
	_ Node = (*Dir)(nil)
	_ Node = (*File)(nil)
)

// File is a leaf node.
type File struct {
	name   string
	path   string
	hidden bool
	meta   *fsutil.Meta
}

func newFile(e fsutil.Entry) *File {
	return &File{name: e.Name, path: e.Path, hidden: e.Hidden, meta: e.Meta}
}

func (f *File) Name() string       { return f.name }
func (f *File) Path() string       { return f.path }
func (f *File) Meta() *fsutil.Meta { return f.meta }
func (f *File) Hidden() bool       { return f.hidden }
func (f *File) IsDir() bool        { return false }
