//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

// IsHidden checks the Windows hidden attribute, falling back to the dot-file rule.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// ShouldHideFromListing reports entries that never appear in listings, such as
// the compatibility junctions under the user profile.
func ShouldHideFromListing(fullPath, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const protected = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	return attrs&protected == protected
}

func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(ptr)
}
