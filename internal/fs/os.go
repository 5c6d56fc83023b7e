package fs

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Overridable in tests.
var (
	osReadDir = os.ReadDir
	osStat    = os.Stat
)

var _ FileSystem = OS{}

// OS is the FileSystem backed by the host operating system.
type OS struct{}

// ListDirectory reads path on a separate goroutine so a stalled read (network
// share, spun-down disk) is abandoned when ctx expires instead of blocking the caller.
func (OS) ListDirectory(ctx context.Context, path string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ListingError{Path: path, Cause: err}
	}

	type result struct {
		entries []Entry
		err     error
	}
	done := make(chan result, 1)
	go func() {
		entries, err := readEntries(path)
		done <- result{entries: entries, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, &ListingError{Path: path, Cause: res.err}
		}
		return res.entries, nil
	case <-ctx.Done():
		return nil, &ListingError{Path: path, Cause: ctx.Err()}
	}
}

// Join joins with the host separator.
func (OS) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

func readEntries(dirPath string) ([]Entry, error) {
	dirEntries, err := osReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		entry := Entry{
			Name:   norm.NFC.String(rawName),
			Path:   fullPath,
			IsDir:  e.IsDir(),
			Hidden: IsHidden(fullPath, rawName),
		}

		// A failed stat is recorded as missing metadata, not as a listing failure.
		if info, err := e.Info(); err == nil {
			entry.Meta = newMeta(info)
		}

		if e.Type()&os.ModeSymlink != 0 {
			if target, err := osStat(fullPath); err == nil {
				entry.IsDir = target.IsDir()
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
