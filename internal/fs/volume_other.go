//go:build !windows && !unix

package fs

import (
	"context"
	"fmt"
)

func DefaultVolumeCandidates() []rune {
	return []rune{'/'}
}

func (OS) VolumeRoot(id rune) string {
	if id == '/' {
		return "/"
	}
	return ""
}

func (o OS) ProbeVolume(ctx context.Context, id rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	root := o.VolumeRoot(id)
	if root == "" {
		return fmt.Errorf("%w: %q", ErrVolumeUnavailable, id)
	}
	if _, err := osStat(root); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVolumeUnavailable, root, err)
	}
	return nil
}
