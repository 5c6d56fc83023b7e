//go:build !windows

package fs

// IsHidden reports dot files as hidden.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing is a no-op on non-Windows platforms.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
