package fs

import "context"

// FileSystem is everything the navigation core needs from storage.
type FileSystem interface {
	// ListDirectory performs one non-recursive read of path. Failures are
	// returned as *ListingError.
	ListDirectory(ctx context.Context, path string) ([]Entry, error)
	// ProbeVolume returns nil when the volume identified by id is accessible.
	ProbeVolume(ctx context.Context, id rune) error
	// VolumeRoot returns the absolute root path of a volume.
	VolumeRoot(id rune) string
	// Join appends a child name to a directory path.
	Join(dir, name string) string
}
