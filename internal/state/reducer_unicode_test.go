package state

import (
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	"github.com/kk-code-lab/rdrive/internal/tree"
	"github.com/kk-code-lab/rdrive/internal/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two directories whose names are equal once normalised to NFC still have
// distinct paths, and going up must return to the one actually entered.
func TestGoUpReturnsToEnteredDirWhenNamesNormaliseEqual(t *testing.T) {
	base := t.TempDir()
	decomposed := filepath.Join(base, "e\u0301")
	composed := filepath.Join(base, "\u00e9")
	require.NoError(t, os.Mkdir(decomposed, 0o755))
	if err := os.Mkdir(composed, 0o755); err != nil {
		t.Skipf("filesystem does not keep both normalisation forms: %v", err)
	}
	require.NoError(t, os.Mkdir(filepath.Join(composed, "only_in_composed"), 0o755))

	reg := volume.NewRegistry(volume.Volume{ID: 'T', Label: "T", Root: tree.NewRoot(base)})
	r := NewStateReducer(fsutil.OS{})
	s := NewNavState(reg)
	s.ScreenHeight = 24

	s.Selection = 0
	mustReduce(t, r, s, EnterSelectionAction{})
	require.Equal(t, 2, s.ListingLen())
	entries := s.CurrentDir.Entries()
	if entries[0].Name() != entries[1].Name() {
		t.Skip("directory names differ after normalisation on this platform")
	}

	selectPath(t, s, composed)
	mustReduce(t, r, s, EnterSelectionAction{})
	require.Equal(t, composed, s.CurrentPath)

	selectName(t, s, "only_in_composed")
	mustReduce(t, r, s, EnterSelectionAction{})
	require.Equal(t, filepath.Join(composed, "only_in_composed"), s.CurrentPath)

	mustReduce(t, r, s, GoUpAction{})
	assert.Equal(t, composed, s.CurrentPath)
	assert.Equal(t, []string{"only_in_composed"}, entryNames(s.CurrentDir))

	mustReduce(t, r, s, GoUpAction{})
	assert.Equal(t, base, s.CurrentPath)
}

func selectPath(t *testing.T, s *NavState, path string) {
	t.Helper()
	for i, n := range s.CurrentDir.Entries() {
		if n.Path() == path {
			s.Selection = i
			return
		}
	}
	t.Fatalf("%q not listed in %s", path, s.CurrentPath)
}

func entryNames(d *tree.Dir) []string {
	var out []string
	for _, n := range d.Entries() {
		out = append(out, n.Name())
	}
	return out
}
