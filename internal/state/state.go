package state

import (
	"github.com/kk-code-lab/rdrive/internal/tree"
	"github.com/kk-code-lab/rdrive/internal/volume"
)

// NoSelection means nothing in the listing is selected.
const NoSelection = -1

// listingChrome is the number of screen rows not available to the listing:
// path line, its border, the status border and the status line.
const listingChrome = 4

type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the message shown in the footer region.
type Status struct {
	Kind StatusKind
	Text string
}

// NavState is the single source of truth for the browser.
type NavState struct {
	// CurrentPath is empty at the volume list ("Home").
	CurrentPath string
	// CurrentDir is nil exactly when CurrentPath is empty.
	CurrentDir *tree.Dir
	// Selection indexes the current listing, or is NoSelection.
	Selection int
	Volumes   *volume.Registry

	Status    Status
	LastError error
	Quit      bool

	ScreenWidth  int
	ScreenHeight int

	// Ancestry of CurrentDir: volume index plus the paths of the directories
	// below its root.
	volumeIndex int
	segments    []string
}

// NewNavState starts at the volume list with nothing selected.
func NewNavState(volumes *volume.Registry) *NavState {
	if volumes == nil {
		volumes = volume.NewRegistry()
	}
	return &NavState{
		Selection:   NoSelection,
		Volumes:     volumes,
		volumeIndex: -1,
	}
}

// AtRoot reports whether the volume list is shown.
func (s *NavState) AtRoot() bool {
	return s.CurrentDir == nil
}

// ListingLen is the number of selectable entries currently shown.
func (s *NavState) ListingLen() int {
	if s.AtRoot() {
		return s.Volumes.Len()
	}
	return s.CurrentDir.Len()
}

// SelectedNode returns the selected directory entry, or nil at the volume list.
func (s *NavState) SelectedNode() tree.Node {
	if s.AtRoot() || s.Selection == NoSelection {
		return nil
	}
	return s.CurrentDir.EntryAt(s.Selection)
}

// SelectedVolume returns the selected volume when the volume list is shown.
func (s *NavState) SelectedVolume() (volume.Volume, bool) {
	if !s.AtRoot() || s.Selection == NoSelection {
		return volume.Volume{}, false
	}
	return s.Volumes.At(s.Selection)
}

// PageSize is how many listing rows fit on screen, at least one.
func (s *NavState) PageSize() int {
	if page := s.ScreenHeight - listingChrome; page > 1 {
		return page
	}
	return 1
}

func (s *NavState) clampSelection() {
	n := s.ListingLen()
	switch {
	case n == 0:
		s.Selection = NoSelection
	case s.Selection >= n:
		s.Selection = n - 1
	case s.Selection < NoSelection:
		s.Selection = NoSelection
	}
}

func (s *NavState) enterDir(volumeIndex int, segments []string, dir *tree.Dir) {
	s.volumeIndex = volumeIndex
	s.segments = segments
	s.CurrentDir = dir
	s.CurrentPath = dir.Path()
	s.Selection = NoSelection
}

func (s *NavState) enterRoot() {
	s.volumeIndex = -1
	s.segments = nil
	s.CurrentDir = nil
	s.CurrentPath = ""
	s.Selection = NoSelection
}

func (s *NavState) clearStatus() {
	s.Status = Status{}
	s.LastError = nil
}
