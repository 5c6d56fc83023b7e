package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	"github.com/kk-code-lab/rdrive/internal/logging"
	"github.com/kk-code-lab/rdrive/internal/tree"
	"github.com/kk-code-lab/rdrive/internal/volume"
)

// DefaultListTimeout bounds each populate when no option overrides it.
const DefaultListTimeout = 5 * time.Second

// StateReducer applies actions to state. It is the only place that touches
// the filesystem on behalf of a transition.
type StateReducer struct {
	fs               fsutil.FileSystem
	listTimeout      time.Duration
	volumeCandidates []rune
}

// Option configures a StateReducer.
type Option func(*StateReducer)

// WithListTimeout bounds each directory listing.
func WithListTimeout(d time.Duration) Option {
	return func(r *StateReducer) {
		if d > 0 {
			r.listTimeout = d
		}
	}
}

// WithVolumeCandidates sets the identifiers probed by RescanVolumesAction.
func WithVolumeCandidates(ids []rune) Option {
	return func(r *StateReducer) {
		r.volumeCandidates = ids
	}
}

// NewStateReducer creates a new reducer
func NewStateReducer(fsys fsutil.FileSystem, opts ...Option) *StateReducer {
	r := &StateReducer{
		fs:               fsys,
		listTimeout:      DefaultListTimeout,
		volumeCandidates: fsutil.DefaultVolumeCandidates(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce applies one action. A returned error has already been recorded in
// state.Status; on a listing failure nothing else about state has changed.
func (r *StateReducer) Reduce(ctx context.Context, state *NavState, action Action) (*NavState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveSelectionAction:
		state.clearStatus()
		state.moveSelection(a.Delta)
		return state, nil

	case MovePageAction:
		state.clearStatus()
		state.moveSelection(a.Pages * state.PageSize())
		return state, nil

	case SelectFirstAction:
		state.clearStatus()
		if state.ListingLen() > 0 {
			state.Selection = 0
		}
		return state, nil

	case SelectLastAction:
		state.clearStatus()
		if n := state.ListingLen(); n > 0 {
			state.Selection = n - 1
		}
		return state, nil

	case EnterSelectionAction:
		state.clearStatus()
		return state, r.enterSelection(ctx, state)

	case GoUpAction:
		state.clearStatus()
		return state, r.goUp(ctx, state)

	// ===== LISTING =====

	case RefreshAction:
		state.clearStatus()
		if state.AtRoot() {
			return state, nil
		}
		if err := r.list(ctx, state.CurrentDir, true); err != nil {
			return state, r.fail(state, err)
		}
		state.clampSelection()
		return state, nil

	case RescanVolumesAction:
		state.clearStatus()
		state.Volumes = volume.Discover(ctx, r.fs, r.volumeCandidates)
		state.enterRoot()
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case QuitAction:
		state.Quit = true
		return state, nil
	}

	return state, fmt.Errorf("unknown action %T", action)
}

func (s *NavState) moveSelection(delta int) {
	n := s.ListingLen()
	if n == 0 {
		s.Selection = NoSelection
		return
	}
	if delta == 0 {
		return
	}
	// Anything beyond the listing length saturates the same way.
	delta = max(-n, min(delta, n))

	var idx int
	switch {
	case s.Selection == NoSelection && delta > 0:
		idx = delta - 1
	case s.Selection == NoSelection:
		idx = n + delta
	default:
		idx = s.Selection + delta
	}

	s.Selection = max(0, min(idx, n-1))
}

func (r *StateReducer) enterSelection(ctx context.Context, state *NavState) error {
	if state.Selection == NoSelection {
		return r.invalid(state, "enter", "nothing selected")
	}

	if state.AtRoot() {
		vol, ok := state.Volumes.At(state.Selection)
		if !ok {
			return r.invalid(state, "enter", "nothing selected")
		}
		if err := r.list(ctx, vol.Root, false); err != nil {
			return r.fail(state, err)
		}
		state.enterDir(state.Selection, nil, vol.Root)
		return nil
	}

	node := state.SelectedNode()
	if node == nil {
		return r.invalid(state, "enter", "nothing selected")
	}
	sub, ok := node.(*tree.Dir)
	if !ok {
		return r.invalid(state, "enter", fmt.Sprintf("%q is a file; opening files is not supported", node.Name()))
	}
	if err := r.list(ctx, sub, false); err != nil {
		return r.fail(state, err)
	}
	state.enterDir(state.volumeIndex, append(slices.Clone(state.segments), sub.Path()), sub)
	return nil
}

func (r *StateReducer) goUp(ctx context.Context, state *NavState) error {
	if state.AtRoot() {
		return nil
	}
	if len(state.segments) == 0 {
		state.enterRoot()
		return nil
	}

	parentSegments := slices.Clone(state.segments[:len(state.segments)-1])
	parent, err := state.Volumes.Resolve(state.volumeIndex, parentSegments)
	if err != nil {
		return r.fail(state, err)
	}
	if err := r.list(ctx, parent, false); err != nil {
		return r.fail(state, err)
	}
	state.enterDir(state.volumeIndex, parentSegments, parent)
	return nil
}

// list populates dir (or re-lists it when refresh is set) under the configured timeout.
func (r *StateReducer) list(ctx context.Context, dir *tree.Dir, refresh bool) error {
	if !refresh && dir.State() != tree.Unlisted {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.listTimeout)
	defer cancel()

	start := time.Now()
	var err error
	if refresh {
		err = dir.Refresh(ctx, r.fs)
	} else {
		err = dir.Populate(ctx, r.fs)
	}
	if err != nil {
		logging.Warn("directory listing failed",
			logging.String("path", dir.Path()),
			logging.Err(err),
		)
		return err
	}

	logging.Debug("directory listed",
		logging.String("path", dir.Path()),
		logging.Int("entries", dir.Len()),
		logging.Duration("took", time.Since(start)),
	)
	return nil
}

func (r *StateReducer) fail(state *NavState, err error) error {
	state.LastError = err
	state.Status = Status{Kind: StatusError, Text: err.Error()}
	return err
}

func (r *StateReducer) invalid(state *NavState, op, reason string) error {
	err := &TransitionError{Op: op, Reason: reason}
	state.LastError = err
	state.Status = Status{Kind: StatusInfo, Text: reason}
	return err
}

// IsListingFailure reports whether err came from a failed directory listing.
func IsListingFailure(err error) bool {
	return errors.Is(err, fsutil.ErrListingFailed)
}
