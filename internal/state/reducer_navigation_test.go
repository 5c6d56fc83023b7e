package state

import (
	"testing"

	"github.com/kk-code-lab/rdrive/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNavStateStartsAtRoot(t *testing.T) {
	_, _, s := newTestBrowser(t)

	assert.True(t, s.AtRoot())
	assert.Empty(t, s.CurrentPath)
	assert.Nil(t, s.CurrentDir)
	assert.Equal(t, NoSelection, s.Selection)
	assert.Equal(t, 2, s.ListingLen())
	assert.Nil(t, s.SelectedNode())
}

func TestEnterVolumeFromRoot(t *testing.T) {
	m, r, s := newTestBrowser(t)

	mustReduce(t, r, s, MoveSelectionAction{Delta: 1}, MoveSelectionAction{Delta: 1})
	require.Equal(t, 1, s.Selection)
	vol, ok := s.SelectedVolume()
	require.True(t, ok)
	require.Equal(t, 'D', vol.ID)
	statusBefore := s.Status

	mustReduce(t, r, s, EnterSelectionAction{})

	assert.False(t, s.AtRoot())
	assert.Equal(t, `D:\`, s.CurrentPath)
	require.NotNil(t, s.CurrentDir)
	assert.Same(t, vol.Root, s.CurrentDir)
	assert.Equal(t, 1, m.ListCalls(`D:\`))
	assert.Equal(t, statusBefore, s.Status)
	assert.Equal(t, NoSelection, s.Selection)
	assert.Equal(t, tree.Listed, s.CurrentDir.State())
	assert.Equal(t, 3, s.ListingLen())
}

func TestEnterDirectoryAndGoUpRoundTrip(t *testing.T) {
	m, r, s := newTestBrowser(t)

	selectName(t, s, "C:")
	mustReduce(t, r, s, EnterSelectionAction{})
	selectName(t, s, "Users")
	mustReduce(t, r, s, EnterSelectionAction{})
	require.Equal(t, `C:\Users`, s.CurrentPath)

	parentPath := s.CurrentPath
	selectName(t, s, "me")
	mustReduce(t, r, s, EnterSelectionAction{})
	assert.Equal(t, `C:\Users\me`, s.CurrentPath)
	assert.Equal(t, tree.ListedEmpty, s.CurrentDir.State())

	mustReduce(t, r, s, GoUpAction{})
	assert.Equal(t, parentPath, s.CurrentPath)
	assert.Equal(t, NoSelection, s.Selection)
	assert.Equal(t, 1, m.ListCalls(`C:\Users`), "cached listing must be reused")
}

func TestGoUpFromVolumeRootReturnsHome(t *testing.T) {
	_, r, s := newTestBrowser(t)

	selectName(t, s, "C:")
	mustReduce(t, r, s, EnterSelectionAction{}, MoveSelectionAction{Delta: 1})
	require.Equal(t, `C:\`, s.CurrentPath)

	mustReduce(t, r, s, GoUpAction{})
	assert.True(t, s.AtRoot())
	assert.Empty(t, s.CurrentPath)
	assert.Nil(t, s.CurrentDir)
	assert.Equal(t, NoSelection, s.Selection)
}

func TestGoUpAtRootIsNoop(t *testing.T) {
	_, r, s := newTestBrowser(t)
	s.Selection = 1
	before := takeSnapshot(s)

	mustReduce(t, r, s, GoUpAction{})
	assert.Equal(t, before, takeSnapshot(s))
}

func TestRevisitDoesNotRelist(t *testing.T) {
	m, r, s := newTestBrowser(t)

	for i := 0; i < 3; i++ {
		selectName(t, s, "D:")
		mustReduce(t, r, s, EnterSelectionAction{})
		selectName(t, s, "Games")
		mustReduce(t, r, s, EnterSelectionAction{}, GoUpAction{}, GoUpAction{})
	}

	assert.Equal(t, 1, m.ListCalls(`D:\`))
	assert.Equal(t, 1, m.ListCalls(`D:\Games`))
}

func TestEnterFileIsInvalidTransition(t *testing.T) {
	_, r, s := newTestBrowser(t)

	selectName(t, s, "D:")
	mustReduce(t, r, s, EnterSelectionAction{})
	selectName(t, s, "readme.txt")
	before := takeSnapshot(s)

	err := reduce(t, r, s, EnterSelectionAction{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, IsListingFailure(err))
	assert.Equal(t, before, takeSnapshot(s))
	assert.Equal(t, StatusInfo, s.Status.Kind)
	assert.Contains(t, s.Status.Text, "readme.txt")
}

func TestEnterWithoutSelectionIsInvalidTransition(t *testing.T) {
	_, r, s := newTestBrowser(t)

	err := reduce(t, r, s, EnterSelectionAction{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.True(t, s.AtRoot())
	assert.Equal(t, StatusInfo, s.Status.Kind)

	// The next successful action clears the message.
	mustReduce(t, r, s, MoveSelectionAction{Delta: 1})
	assert.Equal(t, StatusNone, s.Status.Kind)
	assert.NoError(t, s.LastError)
}

func TestRefreshPicksUpNewEntriesAndClampsSelection(t *testing.T) {
	m, r, s := newTestBrowser(t)

	selectName(t, s, "D:")
	mustReduce(t, r, s, EnterSelectionAction{}, SelectLastAction{})
	require.Equal(t, 2, s.Selection)

	m.Remove(`D:\readme.txt`)
	m.Remove(`D:\Music`)
	m.AddDir(`D:\`, "Apps")
	mustReduce(t, r, s, RefreshAction{})

	assert.Equal(t, 2, s.ListingLen())
	assert.Equal(t, 1, s.Selection)
	assert.Equal(t, 2, m.ListCalls(`D:\`))
	assert.Equal(t, "Games", s.SelectedNode().Name())
}

func TestRefreshAtRootIsNoop(t *testing.T) {
	m, r, s := newTestBrowser(t)
	mustReduce(t, r, s, RefreshAction{})
	assert.True(t, s.AtRoot())
	assert.Equal(t, 0, m.ListCalls(`C:\`))
}

func TestRescanVolumesReturnsHome(t *testing.T) {
	m, r, s := newTestBrowser(t)

	selectName(t, s, "C:")
	mustReduce(t, r, s, EnterSelectionAction{})
	m.AddVolume('E')
	m.Remove(`C:\`)

	mustReduce(t, r, s, RescanVolumesAction{})
	assert.True(t, s.AtRoot())
	assert.Equal(t, NoSelection, s.Selection)
	assert.Equal(t, []rune{'D', 'E'}, s.Volumes.IDs())
}

func TestQuitAndResize(t *testing.T) {
	_, r, s := newTestBrowser(t)

	mustReduce(t, r, s, ResizeAction{Width: 100, Height: 40})
	assert.Equal(t, 100, s.ScreenWidth)
	assert.Equal(t, 36, s.PageSize())

	mustReduce(t, r, s, QuitAction{})
	assert.True(t, s.Quit)
}

func TestUnknownActionIsReported(t *testing.T) {
	_, r, s := newTestBrowser(t)
	assert.Error(t, reduce(t, r, s, struct{}{}))
}
