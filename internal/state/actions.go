package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

// MoveSelectionAction moves the selection by Delta, saturating at both ends.
type MoveSelectionAction struct {
	Delta int
}

// MovePageAction moves the selection by Pages screenfuls.
type MovePageAction struct {
	Pages int
}

type SelectFirstAction struct{}
type SelectLastAction struct{}
type EnterSelectionAction struct{}
type GoUpAction struct{}

// ===== LISTING ACTIONS =====

// RefreshAction re-lists the current directory.
type RefreshAction struct{}

// RescanVolumesAction re-runs volume discovery and returns to the volume list.
type RescanVolumesAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
