// Package volume discovers the storage roots offered at the top of the browser.
package volume

import (
	"context"
	"fmt"
	"unicode"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	"github.com/kk-code-lab/rdrive/internal/logging"
	"github.com/kk-code-lab/rdrive/internal/tree"
)

// Volume is one storage root, keyed by a single-character identifier.
type Volume struct {
	ID    rune
	Label string
	Root  *tree.Dir
}

// Registry is the ordered set of volumes found by Discover.
type Registry struct {
	volumes []Volume
}

// Discover probes candidates in order and keeps those that are accessible,
// each wrapped as an unlisted root. Failed probes mean "absent", not an error.
func Discover(ctx context.Context, fsys fsutil.FileSystem, candidates []rune) *Registry {
	reg := &Registry{}
	for _, id := range candidates {
		if err := fsys.ProbeVolume(ctx, id); err != nil {
			logging.Debug("volume absent", logging.String("volume", string(id)), logging.Err(err))
			continue
		}
		root := fsys.VolumeRoot(id)
		reg.volumes = append(reg.volumes, Volume{
			ID:    id,
			Label: labelFor(id, root),
			Root:  tree.NewRoot(root),
		})
	}
	logging.Info("volumes discovered", logging.Int("count", len(reg.volumes)))
	return reg
}

// NewRegistry builds a registry from already-known volumes.
func NewRegistry(volumes ...Volume) *Registry {
	return &Registry{volumes: volumes}
}

func labelFor(id rune, root string) string {
	if unicode.IsLetter(id) {
		return string(id) + ":"
	}
	return root
}

// Len returns the number of volumes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.volumes)
}

// At returns the volume at index i.
func (r *Registry) At(i int) (Volume, bool) {
	if i < 0 || i >= r.Len() {
		return Volume{}, false
	}
	return r.volumes[i], true
}

// IDs returns the volume identifiers in registry order.
func (r *Registry) IDs() []rune {
	ids := make([]rune, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		ids = append(ids, r.volumes[i].ID)
	}
	return ids
}

// Resolve walks from the root of volume index through child directories given
// by their full paths, outermost first. Every directory on the way must
// already be listed.
func (r *Registry) Resolve(index int, segments []string) (*tree.Dir, error) {
	vol, ok := r.At(index)
	if !ok {
		return nil, fmt.Errorf("volume index %d out of range", index)
	}
	dir := vol.Root
	for _, path := range segments {
		next := dir.ChildDirByPath(path)
		if next == nil {
			return nil, fmt.Errorf("%s has no directory %q", dir.Path(), path)
		}
		dir = next
	}
	return dir, nil
}
