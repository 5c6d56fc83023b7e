// Package memfs is an in-memory fs.FileSystem with deterministic contents,
// used to drive the navigation core without touching the host disk.
package memfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
)

// DefaultModTime is the modification time reported for every entry.
var DefaultModTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var errNotDir = errors.New("not a directory")

type node struct {
	name     string
	isDir    bool
	size     int64
	noMeta   bool
	children []string
}

var _ fsutil.FileSystem = (*FS)(nil)

// FS is safe for concurrent use.
type FS struct {
	mu        sync.Mutex
	sep       string
	volumes   map[rune]string
	nodes     map[string]*node
	failures  map[string]error
	listCalls map[string]int
}

// New creates an empty filesystem using sep as the path separator.
func New(sep string) *FS {
	return &FS{
		sep:       sep,
		volumes:   make(map[rune]string),
		nodes:     make(map[string]*node),
		failures:  make(map[string]error),
		listCalls: make(map[string]int),
	}
}

// NewWindows creates a filesystem with drive-letter style paths.
func NewWindows() *FS {
	return New(`\`)
}

// AddVolume registers a volume and creates its empty root directory.
func (m *FS) AddVolume(id rune) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	root := m.rootFor(id)
	m.volumes[id] = root
	m.nodes[root] = &node{name: root, isDir: true}
	return root
}

func (m *FS) rootFor(id rune) string {
	if m.sep == "/" && id == '/' {
		return "/"
	}
	return string(id) + ":" + m.sep
}

// AddDir creates a directory under parent and returns its path.
func (m *FS) AddDir(parent, name string) string {
	return m.add(parent, &node{name: name, isDir: true})
}

// AddFile creates a file of the given size under parent and returns its path.
func (m *FS) AddFile(parent, name string, size int64) string {
	return m.add(parent, &node{name: name, size: size})
}

func (m *FS) add(parent string, n *node) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.nodes[parent]
	if !ok || !p.isDir {
		panic(fmt.Sprintf("memfs: parent %q is not a directory", parent))
	}
	childPath := m.join(parent, n.name)
	if _, exists := m.nodes[childPath]; !exists {
		p.children = append(p.children, childPath)
	}
	m.nodes[childPath] = n
	return childPath
}

// Remove deletes path and everything below it.
func (m *FS) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for p := range m.nodes {
		if p == path || strings.HasPrefix(p, m.join(path, "")) {
			delete(m.nodes, p)
		}
	}
	for _, n := range m.nodes {
		kept := n.children[:0]
		for _, c := range n.children {
			if _, ok := m.nodes[c]; ok {
				kept = append(kept, c)
			}
		}
		n.children = kept
	}
	for id, root := range m.volumes {
		if root == path {
			delete(m.volumes, id)
		}
	}
}

// FailListing makes every listing of path fail with err until cleared with a nil err.
func (m *FS) FailListing(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, path)
		return
	}
	m.failures[path] = err
}

// DropMeta makes the entry at path report no metadata, like a failed stat.
func (m *FS) DropMeta(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.nodes[path]; ok {
		n.noMeta = true
	}
}

// ListCalls returns how many times path has been listed.
func (m *FS) ListCalls(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls[path]
}

// ListDirectory returns entries in insertion order.
func (m *FS) ListDirectory(ctx context.Context, path string) ([]fsutil.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls[path]++

	if err := ctx.Err(); err != nil {
		return nil, &fsutil.ListingError{Path: path, Cause: err}
	}
	if err, ok := m.failures[path]; ok {
		return nil, &fsutil.ListingError{Path: path, Cause: err}
	}
	n, ok := m.nodes[path]
	if !ok {
		return nil, &fsutil.ListingError{Path: path, Cause: os.ErrNotExist}
	}
	if !n.isDir {
		return nil, &fsutil.ListingError{Path: path, Cause: errNotDir}
	}

	entries := make([]fsutil.Entry, 0, len(n.children))
	for _, childPath := range n.children {
		child := m.nodes[childPath]
		entry := fsutil.Entry{
			Name:   child.name,
			Path:   childPath,
			IsDir:  child.isDir,
			Hidden: strings.HasPrefix(child.name, "."),
		}
		if !child.noMeta {
			entry.Meta = metaFor(child)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func metaFor(n *node) *fsutil.Meta {
	meta := &fsutil.Meta{
		Size:     n.size,
		Modified: DefaultModTime,
		Mode:     0o644,
		Kind:     fsutil.KindFile,
	}
	if n.isDir {
		meta.Size = 0
		meta.Mode = os.ModeDir | 0o755
		meta.Kind = fsutil.KindDir
	}
	return meta
}

// ProbeVolume succeeds for registered volumes whose root still exists.
func (m *FS) ProbeVolume(ctx context.Context, id rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	root, ok := m.volumes[id]
	if !ok {
		return fmt.Errorf("%w: %q", fsutil.ErrVolumeUnavailable, id)
	}
	if _, ok := m.nodes[root]; !ok {
		return fmt.Errorf("%w: %s", fsutil.ErrVolumeUnavailable, root)
	}
	return nil
}

func (m *FS) VolumeRoot(id rune) string {
	return m.rootFor(id)
}

func (m *FS) Join(dir, name string) string {
	return m.join(dir, name)
}

func (m *FS) join(dir, name string) string {
	if strings.HasSuffix(dir, m.sep) {
		return dir + name
	}
	return dir + m.sep + name
}
