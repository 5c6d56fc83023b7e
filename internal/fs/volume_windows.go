//go:build windows

package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/windows"
)

var getLogicalDrives = windows.GetLogicalDrives

// DefaultVolumeCandidates lists drive letters in canonical order.
func DefaultVolumeCandidates() []rune {
	ids := make([]rune, 0, 26)
	for id := 'A'; id <= 'Z'; id++ {
		ids = append(ids, id)
	}
	return ids
}

// VolumeRoot returns the drive root, e.g. `C:\`.
func (OS) VolumeRoot(id rune) string {
	return string(id) + `:\`
}

// ProbeVolume checks the logical drive mask first, then whether the root can be read.
// Removable drives without media are present in the mask but fail the read.
func (o OS) ProbeVolume(ctx context.Context, id rune) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id < 'A' || id > 'Z' {
		return fmt.Errorf("%w: %q", ErrVolumeUnavailable, id)
	}

	if mask, err := getLogicalDrives(); err == nil && mask&(1<<uint(id-'A')) == 0 {
		return fmt.Errorf("%w: %c:", ErrVolumeUnavailable, id)
	}

	f, err := os.Open(o.VolumeRoot(id))
	if err != nil {
		return fmt.Errorf("%w: %c: %w", ErrVolumeUnavailable, id, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %c: %w", ErrVolumeUnavailable, id, err)
	}
	return nil
}
