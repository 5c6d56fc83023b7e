package state

import (
	"context"
	"testing"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	"github.com/kk-code-lab/rdrive/internal/fs/memfs"
	"github.com/kk-code-lab/rdrive/internal/volume"
	"github.com/stretchr/testify/require"
)

// newTestBrowser builds:
//
//	C:\ Users\{me\, desktop.ini}, pagefile.sys
//	D:\ Games\, Music\, readme.txt
func newTestBrowser(t *testing.T) (*memfs.FS, *StateReducer, *NavState) {
	t.Helper()

	m := memfs.NewWindows()
	c := m.AddVolume('C')
	d := m.AddVolume('D')

	users := m.AddDir(c, "Users")
	m.AddDir(users, "me")
	m.AddFile(users, "desktop.ini", 10)
	m.AddFile(c, "pagefile.sys", 4096)

	m.AddDir(d, "Music")
	m.AddDir(d, "Games")
	m.AddFile(d, "readme.txt", 5)

	candidates := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	reg := volume.Discover(context.Background(), m, candidates)
	reducer := NewStateReducer(m, WithVolumeCandidates(candidates))

	state := NewNavState(reg)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	return m, reducer, state
}

func reduce(t *testing.T, r *StateReducer, s *NavState, action Action) error {
	t.Helper()
	_, err := r.Reduce(context.Background(), s, action)
	return err
}

func mustReduce(t *testing.T, r *StateReducer, s *NavState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		require.NoError(t, reduce(t, r, s, action), "action %T", action)
	}
}

// selectName selects the listing entry (or volume label) with the given name.
func selectName(t *testing.T, s *NavState, name string) {
	t.Helper()
	if s.AtRoot() {
		for i := 0; i < s.Volumes.Len(); i++ {
			if vol, _ := s.Volumes.At(i); vol.Label == name {
				s.Selection = i
				return
			}
		}
		t.Fatalf("volume %q not listed", name)
	}
	for i, n := range s.CurrentDir.Entries() {
		if n.Name() == name {
			s.Selection = i
			return
		}
	}
	t.Fatalf("%q not listed in %s", name, s.CurrentPath)
}

type snapshot struct {
	path      string
	dir       any
	selection int
	segments  []string
	volume    int
}

func takeSnapshot(s *NavState) snapshot {
	return snapshot{
		path:      s.CurrentPath,
		dir:       s.CurrentDir,
		selection: s.Selection,
		segments:  append([]string(nil), s.segments...),
		volume:    s.volumeIndex,
	}
}

// slowFS never finishes listing slowPath before the context expires.
type slowFS struct {
	*memfs.FS
	slowPath string
}

func (f slowFS) ListDirectory(ctx context.Context, path string) ([]fsutil.Entry, error) {
	if path == f.slowPath {
		<-ctx.Done()
		return nil, &fsutil.ListingError{Path: path, Cause: ctx.Err()}
	}
	return f.FS.ListDirectory(ctx, path)
}
