//go:build unix

package fs

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

const rootVolume = '/'

var unixAccess = unix.Access

// DefaultVolumeCandidates exposes the single filesystem root.
func DefaultVolumeCandidates() []rune {
	return []rune{rootVolume}
}

func (OS) VolumeRoot(id rune) string {
	if id == rootVolume {
		return "/"
	}
	return ""
}

// ProbeVolume requires the root to be listable by the current user.
func (o OS) ProbeVolume(ctx context.Context, id rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	root := o.VolumeRoot(id)
	if root == "" {
		return fmt.Errorf("%w: %q", ErrVolumeUnavailable, id)
	}
	if err := unixAccess(root, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVolumeUnavailable, root, err)
	}
	return nil
}
