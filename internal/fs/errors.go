package fs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrListingFailed matches every *ListingError via errors.Is.
	ErrListingFailed = errors.New("listing failed")
	// ErrVolumeUnavailable is returned by ProbeVolume for absent volumes.
	ErrVolumeUnavailable = errors.New("volume unavailable")
)

// ListingError reports a directory that could not be read.
type ListingError struct {
	Path  string
	Cause error
}

func (e *ListingError) Error() string {
	if e.TimedOut() {
		return fmt.Sprintf("cannot list %s: timed out", e.Path)
	}
	return fmt.Sprintf("cannot list %s: %v", e.Path, e.Cause)
}

func (e *ListingError) Unwrap() []error {
	return []error{ErrListingFailed, e.Cause}
}

// TimedOut reports whether the listing was abandoned because its deadline passed.
func (e *ListingError) TimedOut() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}
