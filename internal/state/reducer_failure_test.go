package state

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	"github.com/kk-code-lab/rdrive/internal/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshOfDeletedDirectoryKeepsPosition(t *testing.T) {
	m, r, s := newTestBrowser(t)

	selectName(t, s, "D:")
	mustReduce(t, r, s, EnterSelectionAction{})
	selectName(t, s, "Games")
	mustReduce(t, r, s, EnterSelectionAction{})
	before := takeSnapshot(s)

	m.Remove(`D:\Games`)
	err := reduce(t, r, s, RefreshAction{})

	require.Error(t, err)
	assert.True(t, IsListingFailure(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, before, takeSnapshot(s))
	assert.Equal(t, StatusError, s.Status.Kind)
	assert.Contains(t, s.Status.Text, `D:\Games`)
	assert.Equal(t, err, s.LastError)

	// The cached parent is still reachable.
	mustReduce(t, r, s, GoUpAction{})
	assert.Equal(t, `D:\`, s.CurrentPath)
}

func TestEnterDeletedDirectoryFails(t *testing.T) {
	m, r, s := newTestBrowser(t)

	selectName(t, s, "D:")
	mustReduce(t, r, s, EnterSelectionAction{})
	selectName(t, s, "Music")
	m.Remove(`D:\Music`)
	before := takeSnapshot(s)

	err := reduce(t, r, s, EnterSelectionAction{})
	assert.True(t, IsListingFailure(err))
	assert.Equal(t, before, takeSnapshot(s))

	var listingErr *fsutil.ListingError
	require.True(t, errors.As(err, &listingErr))
	assert.Equal(t, `D:\Music`, listingErr.Path)
}

func TestEnterVolumeWithDeniedRootStaysHome(t *testing.T) {
	m, r, s := newTestBrowser(t)
	m.FailListing(`C:\`, errors.New("the device is not ready"))

	selectName(t, s, "C:")
	err := reduce(t, r, s, EnterSelectionAction{})

	assert.True(t, IsListingFailure(err))
	assert.True(t, s.AtRoot())
	assert.Equal(t, 0, s.Selection)
	assert.Equal(t, StatusError, s.Status.Kind)

	// Once readable, the same volume can be entered.
	m.FailListing(`C:\`, nil)
	mustReduce(t, r, s, EnterSelectionAction{})
	assert.Equal(t, `C:\`, s.CurrentPath)
	assert.Equal(t, StatusNone, s.Status.Kind)
}

func TestSlowListingTimesOut(t *testing.T) {
	m, _, _ := newTestBrowser(t)
	fsys := slowFS{FS: m, slowPath: `D:\Games`}
	reg := volume.Discover(context.Background(), fsys, []rune("CD"))
	r := NewStateReducer(fsys, WithListTimeout(20*time.Millisecond))
	s := NewNavState(reg)

	selectName(t, s, "D:")
	mustReduce(t, r, s, EnterSelectionAction{})
	selectName(t, s, "Games")
	before := takeSnapshot(s)

	err := reduce(t, r, s, EnterSelectionAction{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var listingErr *fsutil.ListingError
	require.True(t, errors.As(err, &listingErr))
	assert.True(t, listingErr.TimedOut())
	assert.Equal(t, before, takeSnapshot(s))
	assert.Contains(t, s.Status.Text, "timed out")
}
